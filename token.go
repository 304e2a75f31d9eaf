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
	"strconv"
	"strings"

	"github.com/ianlewis/rpncalc/lexer"
)

// Kind discriminates the variants of a [Token].
type Kind int

const (
	// KindNumber is a numeric literal. Only Token.Num is meaningful.
	KindNumber Kind = iota

	// KindOperator is an operator or parenthesis. Only Token.Op is
	// meaningful.
	KindOperator
)

// Op is an operator symbol.
type Op rune

const (
	OpAdd   Op = '+'
	OpSub   Op = '-'
	OpMul   Op = '*'
	OpDiv   Op = '/'
	OpOpen  Op = '('
	OpClose Op = ')'

	// OpNeg is the unary minus marker. It never appears in input text and is
	// only produced by [Convert].
	OpNeg Op = 'U'
)

// String returns the operator symbol.
func (o Op) String() string {
	return string(rune(o))
}

// binary reports whether o is one of the four arithmetic operators.
func (o Op) binary() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	default:
		return false
	}
}

// precedence returns the binding strength of o. Higher binds tighter.
func (o Op) precedence() int {
	switch o {
	case OpOpen, OpClose:
		return 1
	case OpAdd, OpSub, OpNeg:
		return 2
	case OpMul, OpDiv:
		return 3
	default:
		return 0
	}
}

// Token is a single element of an expression: either a number or an operator.
// Tokens are values and are never shared.
type Token struct {
	Kind Kind
	Num  float64
	Op   Op

	// Pos is where the token was found in the input text. Synthesized tokens
	// take the position of the input they replace.
	Pos lexer.Position
}

// Number returns a number token.
func Number(v float64) Token {
	return Token{Kind: KindNumber, Num: v}
}

// Operator returns an operator token.
func Operator(o Op) Token {
	return Token{Kind: KindOperator, Op: o}
}

// is reports whether t is the operator o.
func (t Token) is(o Op) bool {
	return t.Kind == KindOperator && t.Op == o
}

// String returns the text form of the token.
func (t Token) String() string {
	if t.Kind == KindNumber {
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	}
	return t.Op.String()
}

// FormatPostfix renders a token sequence as space separated text, e.g.
// "2 U 3 4 + *".
func FormatPostfix(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
