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

// Package input implements text input fields that hold a number. A [Calc]
// field evaluates an arithmetic formula, a [Numeric] field holds a plain
// number. Both report text, value and validity changes to subscribed
// listeners.
//
// Fields are not safe for concurrent use.
package input

import (
	"math"
	"strconv"

	"github.com/ianlewis/rpncalc"
)

// Field is an input that turns its text into a number.
type Field interface {
	// Text returns the current text.
	Text() string

	// SetText replaces the text. Setting the current text again does
	// nothing.
	SetText(text string)

	// Value returns the number the text represents. ok is false if the
	// field is empty or invalid.
	Value() (v float64, ok bool)

	// State returns whether the field is empty, valid or invalid.
	State() rpncalc.State

	// Valid reports whether the field holds a value.
	Valid() bool

	// Subscribe adds a listener for e and returns a function removing it.
	Subscribe(e Event, l Listener) (unsubscribe func())
}

// parseFunc computes the value of a field's text.
type parseFunc func(text string) (float64, rpncalc.State)

// field holds the state shared by all fields. The owning field passes
// itself as self so that listeners receive the outer type.
type field struct {
	self     Field
	parse    parseFunc
	notifier Notifier

	text  string
	value float64
	state rpncalc.State
}

func (f *field) Text() string {
	return f.text
}

func (f *field) SetText(text string) {
	if text == f.text {
		return
	}
	f.text = text
	f.update()
	f.notifier.Dispatch(EventTextChanged, f.self)
}

func (f *field) Value() (float64, bool) {
	if f.state != rpncalc.StateValid {
		return 0, false
	}
	return f.value, true
}

func (f *field) State() rpncalc.State {
	return f.state
}

func (f *field) Valid() bool {
	return f.state == rpncalc.StateValid
}

func (f *field) Subscribe(e Event, l Listener) func() {
	return f.notifier.Subscribe(e, l)
}

// update recomputes the value and dispatches value and validity changes.
func (f *field) update() {
	wasValid := f.Valid()

	var value float64
	state := rpncalc.StateEmpty
	if f.text != "" {
		value, state = f.parse(f.text)
	}
	if state != rpncalc.StateValid {
		value = 0
	}

	changed := state != f.state || value != f.value
	f.value, f.state = value, state

	if changed {
		f.notifier.Dispatch(EventValueChanged, f.self)
	}
	if wasValid != f.Valid() {
		f.notifier.Dispatch(EventValidChanged, f.self)
	}
}

// FormatValue renders v for display and for [Numeric] text: plain decimal
// notation for moderate magnitudes and exponent notation otherwise.
func FormatValue(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
