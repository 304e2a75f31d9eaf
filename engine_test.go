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

package rpncalc_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"

	"github.com/ianlewis/rpncalc"
)

func TestEngine_Change(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		want  float64
		ok    bool
		err   error
		state rpncalc.State
	}{
		{"", 0, false, rpncalc.ErrEmptyExpression, rpncalc.StateEmpty},
		{"   ", 0, false, rpncalc.ErrEmptyExpression, rpncalc.StateEmpty},
		{"3+4", 7, true, nil, rpncalc.StateValid},
		{" 3 + 4 ", 7, true, nil, rpncalc.StateValid},
		{"-2*(3+4)+5/6", -14 + 5.0/6.0, true, nil, rpncalc.StateValid},
		{"-3-4", -7, true, nil, rpncalc.StateValid},
		{"2*(3+4", 0, false, rpncalc.ErrUnmatchedOpenParen, rpncalc.StateInvalid},
		{"2+)", 0, false, rpncalc.ErrUnmatchedCloseParen, rpncalc.StateInvalid},
		{"2 3", 0, false, rpncalc.ErrMalformedExpression, rpncalc.StateInvalid},
		{"--3", 0, false, rpncalc.ErrMalformedExpression, rpncalc.StateInvalid},
		{"+", 0, false, rpncalc.ErrMalformedExpression, rpncalc.StateInvalid},
		{"3+", 0, false, rpncalc.ErrMalformedExpression, rpncalc.StateInvalid},
		{"3*-4", 0, false, rpncalc.ErrMalformedExpression, rpncalc.StateInvalid},
		{"/2", 0, false, rpncalc.ErrInvalidUnaryOperator, rpncalc.StateInvalid},
		{"2a", 0, false, rpncalc.ErrInvalidCharacter, rpncalc.StateInvalid},
		{"1..2", 0, false, rpncalc.ErrInvalidNumber, rpncalc.StateInvalid},
		{"5/0", math.Inf(1), true, nil, rpncalc.StateValid},
		{"-5/0", math.Inf(-1), true, nil, rpncalc.StateValid},
		{"0/0", 0, false, rpncalc.ErrNotANumber, rpncalc.StateInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			e := rpncalc.New()
			e.Change(tc.text)

			got, ok := e.Value()
			if ok != tc.ok {
				t.Errorf("Value: want ok: %v, got: %v (%v)", tc.ok, ok, e.Err())
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Value (-want +got):\n%s", diff)
			}
			if !errors.Is(e.Err(), tc.err) {
				t.Errorf("Err: want: %v, got: %v", tc.err, e.Err())
			}
			if got, want := e.State(), tc.state; got != want {
				t.Errorf("State: want: %v, got: %v", want, got)
			}
			if got, want := e.Text(), tc.text; got != want {
				t.Errorf("Text: want: %q, got: %q", want, got)
			}
		})
	}
}

func TestEngine_New(t *testing.T) {
	t.Parallel()

	e := rpncalc.New()
	if _, ok := e.Value(); ok {
		t.Errorf("Value: want no value before Change")
	}
	if got, want := e.State(), rpncalc.StateEmpty; got != want {
		t.Errorf("State: want: %v, got: %v", want, got)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	t.Parallel()

	e := rpncalc.New()
	for _, text := range []string{"1+2*3", "1+2*3", "(1", "(1", "1+2*3"} {
		first := evalOnce(e, text)
		second := evalOnce(e, text)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Change(%q) twice (-first +second):\n%s", text, diff)
		}
	}
}

type result struct {
	Value float64
	OK    bool
}

func evalOnce(e *rpncalc.Engine, text string) result {
	e.Change(text)
	v, ok := e.Value()
	return result{v, ok}
}

func TestEngine_NoLeak(t *testing.T) {
	t.Parallel()

	e := rpncalc.New()
	e.Change("6*7")
	e.Change("6*")
	if v, ok := e.Value(); ok {
		t.Errorf("Value: want no value, got: %v", v)
	}
	e.Change("")
	if got, want := e.State(), rpncalc.StateEmpty; got != want {
		t.Errorf("State: want: %v, got: %v", want, got)
	}
	e.Change("1")
	if v, ok := e.Value(); !ok || v != 1 {
		t.Errorf("Value: want: 1, got: %v, %v", v, ok)
	}
}

func TestEngine_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := rpncalc.New(rpncalc.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	e.Change("1+1")
	if got := buf.Len(); got != 0 {
		t.Errorf("log: want nothing for a valid text, got: %q", buf.String())
	}

	e.Change("2*(3")

	var entry struct {
		Level   string `json:"level"`
		Text    string `json:"text"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decoding log entry %q: %v", buf.String(), err)
	}

	want := struct {
		Level   string `json:"level"`
		Text    string `json:"text"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}{
		Level:   "debug",
		Text:    "2*(3",
		Error:   e.Err().Error(),
		Message: "no value",
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Errorf("log entry (-want +got):\n%s", diff)
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	for state, want := range map[rpncalc.State]string{
		rpncalc.StateEmpty:   "empty",
		rpncalc.StateValid:   "valid",
		rpncalc.StateInvalid: "invalid",
		rpncalc.State(99):    "unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("String: want: %q, got: %q", want, got)
		}
	}
}
