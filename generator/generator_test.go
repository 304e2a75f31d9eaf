// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ianlewis/rpncalc"
	"github.com/ianlewis/rpncalc/generator"
)

func seeded(seed uint64) generator.Option {
	return generator.WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNew_Config(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []generator.Option
		ok   bool
	}{
		{"defaults", nil, true},
		{"two operands", []generator.Option{generator.WithMaxOperands(2)}, true},
		{"one operand", []generator.Option{generator.WithMaxOperands(1)}, false},
		{"zero depth", []generator.Option{generator.WithMaxDepth(0)}, true},
		{"negative depth", []generator.Option{generator.WithMaxDepth(-1)}, false},
		{"zero max number", []generator.Option{generator.WithMaxNumber(0)}, false},
		{"nan max number", []generator.Option{generator.WithMaxNumber(math.NaN())}, false},
		{"inf max number", []generator.Option{generator.WithMaxNumber(math.Inf(1))}, false},
		{"negative digits", []generator.Option{generator.WithFixedDigits(-1)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := generator.New(tc.opts...)
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, g)
				return
			}
			require.ErrorIs(t, err, generator.ErrConfig)
			require.Nil(t, g)
		})
	}
}

func TestGenerate_Seeded(t *testing.T) {
	t.Parallel()

	a, err := generator.New(seeded(42))
	require.NoError(t, err)
	b, err := generator.New(seeded(42))
	require.NoError(t, err)

	for range 50 {
		require.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerate_ZeroDepth(t *testing.T) {
	t.Parallel()

	g, err := generator.New(generator.WithMaxDepth(0), seeded(1))
	require.NoError(t, err)

	plain := regexp.MustCompile(`^[0-9]+$`)
	for range 100 {
		f := g.Generate()
		require.Regexp(t, plain, f)
	}
}

func TestGenerate_FixedDigits(t *testing.T) {
	t.Parallel()

	g, err := generator.New(generator.WithFixedDigits(2), seeded(7))
	require.NoError(t, err)

	number := regexp.MustCompile(`[0-9.]+`)
	decimal := regexp.MustCompile(`^[0-9]+\.[0-9]{2}$`)
	for range 100 {
		for _, n := range number.FindAllString(g.Generate(), -1) {
			require.Regexp(t, decimal, n)
		}
	}
}

func TestGenerate_MaxNumber(t *testing.T) {
	t.Parallel()

	g, err := generator.New(generator.WithMaxNumber(3), generator.WithFixedDigits(1), seeded(3))
	require.NoError(t, err)

	number := regexp.MustCompile(`[0-9.]+`)
	for range 100 {
		for _, n := range number.FindAllString(g.Generate(), -1) {
			v, err := rpncalc.Eval(n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 3.0)
		}
	}
}

func TestGenerate_Charset(t *testing.T) {
	t.Parallel()

	g, err := generator.New(generator.WithFixedDigits(3), seeded(11))
	require.NoError(t, err)

	for range 200 {
		f := g.Generate()
		require.NotEmpty(t, f)
		require.Empty(t, strings.Trim(f, "0123456789.+-*/()"), f)
	}
}

// TestGenerate_Accepted checks that every generated formula is accepted by
// the tokenizer and converter and reduces to a single value.
func TestGenerate_Accepted(t *testing.T) {
	t.Parallel()

	for depth := 1; depth <= 4; depth++ {
		for operands := 2; operands <= 4; operands++ {
			t.Run(fmt.Sprintf("depth=%d,operands=%d", depth, operands), func(t *testing.T) {
				t.Parallel()

				g, err := generator.New(
					generator.WithMaxDepth(depth),
					generator.WithMaxOperands(operands),
					generator.WithFixedDigits(depth%3),
					seeded(uint64(depth*10+operands)),
				)
				require.NoError(t, err)

				for range 100 {
					f := g.Generate()

					tokens, err := rpncalc.Tokenize(f)
					require.NoError(t, err, f)

					postfix, err := rpncalc.Convert(tokens)
					require.NoError(t, err, f)

					_, err = rpncalc.Evaluate(postfix)
					require.NoError(t, err, f)
				}
			})
		}
	}
}
