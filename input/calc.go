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

package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ianlewis/rpncalc"
)

// Calc is a field holding an arithmetic formula. Its value is the value of
// the formula. Formulas evaluating to an infinity are invalid.
type Calc struct {
	field
	engine *rpncalc.Engine
}

var _ Field = (*Calc)(nil)

// NewCalc returns an empty Calc field. The options configure the underlying
// [rpncalc.Engine].
func NewCalc(opts ...rpncalc.Option) *Calc {
	c := &Calc{engine: rpncalc.New(opts...)}
	c.self = c
	c.parse = c.eval
	return c
}

func (c *Calc) eval(text string) (float64, rpncalc.State) {
	c.engine.Change(text)
	v, ok := c.engine.Value()
	switch {
	case !ok:
		return 0, c.engine.State()
	case math.IsInf(v, 0):
		return 0, rpncalc.StateInvalid
	default:
		return v, rpncalc.StateValid
	}
}

// Err returns why the formula has no value, or nil. An infinite result has
// no error but is still invalid.
func (c *Calc) Err() error {
	if c.text == "" {
		return nil
	}
	return c.engine.Err()
}

// ErrNotFinite is returned by [Calc.SetValue] for infinities and NaN, which
// no formula can hold as a value.
var ErrNotFinite = errors.New("value is not finite")

// SetValue replaces the formula with the number v in plain decimal notation
// unless v is already the field's value. Non-finite values leave the field
// unchanged and return [ErrNotFinite].
func (c *Calc) SetValue(v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	if cur, ok := c.Value(); ok && cur == v {
		return nil
	}
	c.SetText(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

// Display returns the text shown next to the formula: the value, "?" for an
// invalid formula and "" for an empty one.
func (c *Calc) Display() string {
	switch c.state {
	case rpncalc.StateValid:
		return FormatValue(c.value)
	case rpncalc.StateInvalid:
		return "?"
	default:
		return ""
	}
}
