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

// Package lexer implements a small state-machine lexer over rune streams. It
// knows nothing about the tokens it produces; callers supply the states that
// decide what a token is.
package lexer

import (
	"fmt"
	"strconv"
)

// TokenType is a user-defined Token type.
type TokenType int

// TokenTypeEOF indicates an EOF token signaling the end of input.
const TokenTypeEOF TokenType = -1

// Position is a location in the input stream.
type Position struct {
	// Offset is the rune offset in the input stream, starting at 0.
	Offset int

	// Line is the line number in the input stream, starting at 1.
	Line int

	// Column is the column number in the line, starting at 1.
	Column int
}

// String returns a string representation of the Position.
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is a run of input emitted by a Lexer.
type Token struct {
	// Type is the Token's type.
	Type TokenType

	// Value is the raw text of the Token.
	Value string

	// Start is the position of the first rune of the Token.
	Start Position

	// End is the position just past the last rune of the Token.
	End Position
}

// String returns a string representation of the Token.
func (t Token) String() string {
	value := t.Value
	if t.Type == TokenTypeEOF {
		value = "<EOF>"
	}
	return fmt.Sprintf("%s: %s", t.Start, value)
}

// Lexer produces [Token]s from an input stream.
type Lexer interface {
	// NextToken returns the next token from the input. If there are no more
	// tokens or an error occurs, it returns a Token with Type set to
	// [TokenTypeEOF].
	NextToken() *Token

	// Err returns the error encountered by the lexer, if any. Reaching the
	// end of input is not an error.
	Err() error
}
