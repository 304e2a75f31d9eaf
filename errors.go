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
	"fmt"
	"strconv"

	"github.com/ianlewis/rpncalc/lexer"
)

// Lexical errors.
var (
	// ErrInvalidCharacter is returned for a character outside of the accepted
	// character set.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidNumber is returned for a run of digits and dots that does not
	// parse as a number, e.g. "1.2.3".
	ErrInvalidNumber = errors.New("invalid number")
)

// Syntax errors.
var (
	ErrUnmatchedCloseParen  = errors.New("unmatched close parenthesis")
	ErrUnmatchedOpenParen   = errors.New("unmatched open parenthesis")
	ErrInvalidUnaryOperator = errors.New("invalid unary operator")
)

// Evaluation errors.
var (
	// ErrMalformedExpression is returned when the postfix sequence does not
	// reduce to exactly one value.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidOperator is returned when a token that can never appear in a
	// postfix sequence is found there.
	ErrInvalidOperator = errors.New("invalid operator")
)

var (
	// ErrEmptyExpression is returned for text with no tokens at all.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrNotANumber is recorded by [Engine] when an expression evaluates to
	// NaN, e.g. "0/0".
	ErrNotANumber = errors.New("not a number")
)

// LexError is returned by [Tokenize]. It wraps ErrInvalidCharacter or
// ErrInvalidNumber.
type LexError struct {
	Err error

	// Text is the offending character or number lexeme.
	Text string

	Pos lexer.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %v %s", e.Pos, e.Err, strconv.Quote(e.Text))
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// SyntaxError is returned by [Convert]. It wraps ErrUnmatchedCloseParen,
// ErrUnmatchedOpenParen or ErrInvalidUnaryOperator, or ErrInvalidOperator
// for a token that cannot appear in infix input such as [OpNeg].
type SyntaxError struct {
	Err error

	// Op is the operator at fault.
	Op Op

	Pos lexer.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %v %q", e.Pos, e.Err, rune(e.Op))
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// EvalError is returned by [Evaluate]. It wraps ErrMalformedExpression or
// ErrInvalidOperator.
type EvalError struct {
	Err error

	// Token is the postfix token being applied when evaluation failed. It is
	// nil when the sequence was consumed but did not leave exactly one value.
	Token *Token

	// Depth is the size of the value stack at the time of failure.
	Depth int
}

func (e *EvalError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%v: %d values left", e.Err, e.Depth)
	}
	return fmt.Sprintf("%s: %v at %q with %d values", e.Token.Pos, e.Err, e.Token.String(), e.Depth)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
