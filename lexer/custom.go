// Copyright 2023 Google LLC
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

package lexer

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/ianlewis/runeio"
)

// EOF is a rune that indicates that the lexer has reached the end of input.
const EOF rune = -1

// LexState is a state of the lexing state machine. Run processes input and
// returns the next state to transition to. A nil next state ends lexing
// normally; a non-nil error ends it with that error.
type LexState interface {
	Run(*CustomLexer) (LexState, error)
}

type lexFnState struct {
	f func(*CustomLexer) (LexState, error)
}

// Run implements LexState.Run.
func (s *lexFnState) Run(l *CustomLexer) (LexState, error) {
	if s.f == nil {
		return nil, nil
	}
	return s.f(l)
}

// LexStateFn creates a LexState from the given Run function.
func LexStateFn(f func(*CustomLexer) (LexState, error)) LexState {
	return &lexFnState{f}
}

// CustomLexer lexically processes a rune stream. It is implemented as a
// finite-state machine in which each [LexState] implements its own
// processing.
//
// A CustomLexer maintains a cursor which marks the start of the token
// currently being processed. States advance the reader to find the end of
// the token and then emit it, which moves the cursor up to the reader.
type CustomLexer struct {
	// buf holds tokens that have been emitted but not yet returned.
	buf []*Token

	// state is the current state of the lexer.
	state LexState

	r *runeio.RuneReader

	// b holds the text of the current token.
	b strings.Builder

	// pos is the current position of the underlying reader.
	pos Position

	// cursor is the start position of the current token.
	cursor Position

	// err is the first error the lexer encountered.
	err error
}

var _ Lexer = (*CustomLexer)(nil)

// NewCustomLexer creates a new CustomLexer reading from r and starting in
// startingState.
func NewCustomLexer(r io.Reader, startingState LexState) *CustomLexer {
	start := Position{
		Offset: 0,
		Line:   1,
		Column: 1,
	}

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &CustomLexer{
		state:  startingState,
		r:      runeio.NewReader(br),
		pos:    start,
		cursor: start,
	}
}

// Pos returns the current position of the underlying reader.
func (l *CustomLexer) Pos() Position {
	return l.pos
}

// Cursor returns the position marking the beginning of the token currently
// being processed.
func (l *CustomLexer) Cursor() Position {
	return l.cursor
}

// Token returns the text of the token currently being processed.
func (l *CustomLexer) Token() string {
	return l.b.String()
}

// Width returns the number of runes in the token currently being processed.
func (l *CustomLexer) Width() int {
	return l.pos.Offset - l.cursor.Offset
}

// Peek returns the next rune without advancing the reader or the cursor. It
// returns [EOF] at the end of input or after an error.
func (l *CustomLexer) Peek() rune {
	if l.err != nil {
		return EOF
	}

	p, err := l.r.Peek(1)
	l.setErr(err)
	if len(p) < 1 {
		return EOF
	}
	return p[0]
}

// Advance adds the next rune to the current token and returns true if the
// reader actually advanced.
func (l *CustomLexer) Advance() bool {
	return l.advance(false)
}

// Discard skips the next rune, moving the cursor past it, and returns true if
// the reader actually advanced.
func (l *CustomLexer) Discard() bool {
	return l.advance(true)
}

func (l *CustomLexer) advance(discard bool) bool {
	if l.err != nil {
		return false
	}

	rn, _, err := l.r.ReadRune()
	if err != nil {
		l.setErr(err)
		return false
	}

	l.pos.Offset++
	l.pos.Column++
	if rn == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	}

	if discard {
		l.Ignore()
		return true
	}

	_, _ = l.b.WriteRune(rn)
	return true
}

// Ignore drops the current token text and moves the cursor up to the reader
// position.
func (l *CustomLexer) Ignore() {
	l.cursor = l.pos
	l.b.Reset()
}

// Emit queues the token between the cursor and the reader position and
// returns it. The cursor is moved up to the reader position.
func (l *CustomLexer) Emit(typ TokenType) *Token {
	if l.err != nil {
		return nil
	}

	token := l.newToken(typ)
	l.buf = append(l.buf, token)
	l.Ignore()

	return token
}

// NextToken implements [Lexer.NextToken]. States are run until a token is
// available. Once the states are exhausted or an error occurs, a token of
// type [TokenTypeEOF] is returned on every call.
func (l *CustomLexer) NextToken() *Token {
	for len(l.buf) == 0 && l.state != nil && l.err == nil {
		var err error
		l.state, err = l.state.Run(l)
		l.setErr(err)
	}

	if len(l.buf) > 0 {
		token := l.buf[0]
		l.buf = l.buf[1:]
		return token
	}

	return l.newToken(TokenTypeEOF)
}

// Err implements [Lexer.Err].
func (l *CustomLexer) Err() error {
	return l.err
}

func (l *CustomLexer) newToken(typ TokenType) *Token {
	return &Token{
		Type:  typ,
		Value: l.b.String(),
		Start: l.cursor,
		End:   l.pos,
	}
}

func (l *CustomLexer) setErr(err error) {
	if err != nil && l.err == nil && !errors.Is(err, io.EOF) {
		l.err = err
	}
}
