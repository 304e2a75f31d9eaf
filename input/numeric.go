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
	"math"
	"strconv"
	"strings"

	"github.com/ianlewis/rpncalc"
)

// Numeric is a field holding a single number, optionally surrounded by
// spaces.
type Numeric struct {
	field
}

var _ Field = (*Numeric)(nil)

// NewNumeric returns an empty Numeric field.
func NewNumeric() *Numeric {
	n := &Numeric{}
	n.self = n
	n.parse = parseNumber
	return n
}

func parseNumber(text string) (float64, rpncalc.State) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) {
		return 0, rpncalc.StateInvalid
	}
	return v, rpncalc.StateValid
}

// SetValue replaces the text with the number v unless v is already the
// field's value.
func (n *Numeric) SetValue(v float64) {
	if cur, ok := n.Value(); ok && cur == v {
		return
	}
	n.SetText(FormatValue(v))
}
