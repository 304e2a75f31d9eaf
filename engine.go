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

package rpncalc

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Eval runs text through [Tokenize], [Convert] and [Evaluate]. Text without
// any tokens fails with [ErrEmptyExpression]. Other errors are the typed
// errors of the failing stage.
func Eval(text string) (float64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}

	postfix, err := Convert(tokens)
	if err != nil {
		return 0, err
	}

	return Evaluate(postfix)
}

// State is the outcome of the last [Engine.Change].
type State int

const (
	// StateEmpty means the text held no tokens.
	StateEmpty State = iota

	// StateValid means the text evaluated to a number.
	StateValid

	// StateInvalid means the text could not be evaluated.
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the logger that failed evaluations are reported to at debug
// level.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine evaluates the text of a single input as it changes. It never fails:
// text that cannot be evaluated simply has no value.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	logger zerolog.Logger

	text  string
	value float64
	err   error
}

// New returns an Engine holding the empty text.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: zerolog.Nop(),
		err:    ErrEmptyExpression,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Change replaces the text and evaluates it. NaN results are treated as
// having no value; infinite results are kept.
func (e *Engine) Change(text string) {
	e.text = text
	e.value = 0

	v, err := Eval(text)
	if err == nil && math.IsNaN(v) {
		err = ErrNotANumber
	}
	e.err = err
	if err != nil {
		e.logger.Debug().Err(err).Str("text", text).Msg("no value")
		return
	}

	e.value = v
}

// Text returns the text given to the last Change.
func (e *Engine) Text() string {
	return e.text
}

// Value returns the value of the current text. ok is false if the text has
// no value.
func (e *Engine) Value() (v float64, ok bool) {
	if e.err != nil {
		return 0, false
	}
	return e.value, true
}

// Err returns the reason the current text has no value, or nil.
func (e *Engine) Err() error {
	return e.err
}

// State returns whether the current text is empty, valid or invalid.
func (e *Engine) State() State {
	switch {
	case e.err == nil:
		return StateValid
	case errors.Is(e.err, ErrEmptyExpression):
		return StateEmpty
	default:
		return StateInvalid
	}
}
