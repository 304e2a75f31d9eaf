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

// Package generator produces random, syntactically valid arithmetic formulas
// for testing expression evaluators.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Default configuration.
const (
	DefaultMaxOperands = 4
	DefaultMaxDepth    = 3
	DefaultMaxNumber   = 10
	DefaultFixedDigits = 0
)

// ErrConfig is returned by [New] for an unusable configuration.
var ErrConfig = errors.New("invalid generator config")

// production is a kind of sub-formula.
type production int

const (
	prodNumber production = iota
	prodArithmetic
	prodParenthesis
)

// thresholds are cumulative probabilities for picking a production.
type thresholds struct {
	number     float64
	arithmetic float64
}

var (
	// The top level is almost always an arithmetic group.
	topThresholds = thresholds{number: 0.1, arithmetic: 0.9}

	// Below the top half of the sub-formulas are numbers and the rest are
	// arithmetic groups.
	nestedThresholds = thresholds{number: 0.5, arithmetic: 1}
)

// operators and their cumulative probabilities.
var (
	operators       = [...]byte{'+', '-', '*', '/'}
	operatorWeights = [...]float64{0.3, 0.6, 0.8, 1}
)

// Option configures a [Generator].
type Option func(*Generator)

// WithMaxOperands sets the largest number of operands in one arithmetic
// group. It must be at least 2.
func WithMaxOperands(n int) Option {
	return func(g *Generator) {
		g.maxOperands = n
	}
}

// WithMaxDepth sets how deep sub-formulas may nest. At this depth only
// numbers are generated.
func WithMaxDepth(n int) Option {
	return func(g *Generator) {
		g.maxDepth = n
	}
}

// WithMaxNumber sets the exclusive upper bound of generated numbers before
// rounding.
func WithMaxNumber(n float64) Option {
	return func(g *Generator) {
		g.maxNumber = n
	}
}

// WithFixedDigits sets the number of decimal places numbers are written with.
func WithFixedDigits(n int) Option {
	return func(g *Generator) {
		g.fixedDigits = n
	}
}

// WithSource sets the source of randomness. Use a seeded source for
// reproducible formulas.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rnd = rand.New(src)
	}
}

// Generator produces random formulas. A Generator is not safe for
// concurrent use.
type Generator struct {
	maxOperands int
	maxDepth    int
	maxNumber   float64
	fixedDigits int
	rnd         *rand.Rand
}

// New returns a Generator. Without [WithSource] it uses a randomly seeded
// source.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		maxOperands: DefaultMaxOperands,
		maxDepth:    DefaultMaxDepth,
		maxNumber:   DefaultMaxNumber,
		fixedDigits: DefaultFixedDigits,
	}
	for _, opt := range opts {
		opt(g)
	}

	switch {
	case g.maxOperands < 2:
		return nil, fmt.Errorf("%w: max operands %d is less than 2", ErrConfig, g.maxOperands)
	case g.maxDepth < 0:
		return nil, fmt.Errorf("%w: negative max depth %d", ErrConfig, g.maxDepth)
	case !(g.maxNumber > 0) || math.IsInf(g.maxNumber, 1):
		return nil, fmt.Errorf("%w: max number %v is not a positive finite number", ErrConfig, g.maxNumber)
	case g.fixedDigits < 0:
		return nil, fmt.Errorf("%w: negative fixed digits %d", ErrConfig, g.fixedDigits)
	}

	if g.rnd == nil {
		g.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return g, nil
}

// Generate returns a new random formula. Generation always starts at the top
// level; deeper levels are only reached through nesting.
func (g *Generator) Generate() string {
	var b strings.Builder
	g.formula(&b, 0)
	return b.String()
}

// formula writes a sub-formula at the given depth.
func (g *Generator) formula(b *strings.Builder, depth int) {
	if depth >= g.maxDepth {
		g.number(b)
		return
	}

	switch g.pick(depth) {
	case prodNumber:
		// Nested numbers are never signed so that a sign only ever follows
		// the start of the formula or '('.
		if depth == 0 {
			g.sign(b)
		}
		g.number(b)
	case prodArithmetic:
		g.arithmetic(b, depth)
	case prodParenthesis:
		b.WriteByte('(')
		g.sign(b)
		g.formula(b, depth+1)
		b.WriteByte(')')
	}
}

func (g *Generator) pick(depth int) production {
	t := nestedThresholds
	if depth == 0 {
		t = topThresholds
	}

	switch r := g.rnd.Float64(); {
	case r < t.number:
		return prodNumber
	case r < t.arithmetic:
		return prodArithmetic
	default:
		return prodParenthesis
	}
}

// arithmetic writes 2 to maxOperands sub-formulas joined by operators. The
// group is parenthesized below the top level.
func (g *Generator) arithmetic(b *strings.Builder, depth int) {
	if depth > 0 {
		b.WriteByte('(')
	}
	g.sign(b)

	n := 2 + g.rnd.IntN(g.maxOperands-1)
	for i := range n {
		if i > 0 {
			b.WriteByte(g.operator())
		}
		g.formula(b, depth+1)
	}

	if depth > 0 {
		b.WriteByte(')')
	}
}

func (g *Generator) operator() byte {
	r := g.rnd.Float64()
	for i, w := range operatorWeights {
		if r < w {
			return operators[i]
		}
	}
	return operators[len(operators)-1]
}

// sign writes an optional unary sign: '-' half of the time, '+' a tenth of
// the time.
func (g *Generator) sign(b *strings.Builder) {
	switch r := g.rnd.Float64(); {
	case r < 0.5:
		b.WriteByte('-')
	case r < 0.6:
		b.WriteByte('+')
	}
}

func (g *Generator) number(b *strings.Builder) {
	b.WriteString(strconv.FormatFloat(g.rnd.Float64()*g.maxNumber, 'f', g.fixedDigits, 64))
}
