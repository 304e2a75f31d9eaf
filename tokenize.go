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
	"strconv"
	"strings"

	"github.com/ianlewis/rpncalc/lexer"
)

const (
	lexTypeNum lexer.TokenType = iota
	lexTypeOper
)

// lexExpression lexes operators and parentheses, skips spaces and hands
// digits over to lexNumber.
func lexExpression(l *lexer.CustomLexer) (lexer.LexState, error) {
	for {
		switch rn := l.Peek(); rn {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			return lexer.LexStateFn(lexNumber), nil
		case '+', '-', '*', '/', '(', ')':
			l.Advance()
			l.Emit(lexTypeOper)
		case ' ':
			l.Discard()
		case lexer.EOF:
			return nil, nil
		default:
			return nil, &LexError{
				Err:  ErrInvalidCharacter,
				Text: string(rn),
				Pos:  l.Pos(),
			}
		}
	}
}

// lexNumber consumes a maximal run of digits and dots. Whatever ends the run
// is left for lexExpression.
func lexNumber(l *lexer.CustomLexer) (lexer.LexState, error) {
	for {
		switch l.Peek() {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			l.Advance()
		default:
			l.Emit(lexTypeNum)
			return lexer.LexStateFn(lexExpression), nil
		}
	}
}

// Tokenize splits text into number and operator tokens in input order. Only
// digits, '.', the operators "+-*/", parentheses and spaces are accepted.
// Errors are of type *[LexError].
func Tokenize(text string) ([]Token, error) {
	l := lexer.NewCustomLexer(strings.NewReader(text), lexer.LexStateFn(lexExpression))

	var tokens []Token
	for {
		lt := l.NextToken()
		if lt.Type == lexer.TokenTypeEOF {
			break
		}

		tok, err := newToken(lt)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	if err := l.Err(); err != nil {
		var lexErr *LexError
		if errors.As(err, &lexErr) {
			return nil, lexErr
		}
		return nil, &LexError{Err: err, Pos: l.Pos()}
	}

	return tokens, nil
}

// newToken converts a raw lexer token into a Token.
func newToken(lt *lexer.Token) (Token, error) {
	if lt.Type == lexTypeOper {
		tok := Operator(Op(lt.Value[0]))
		tok.Pos = lt.Start
		return tok, nil
	}

	// ParseFloat would also accept forms such as "Inf" or "1e5" but lexNumber
	// only ever passes digits and dots. Out of range literals become ±Inf.
	v, err := strconv.ParseFloat(lt.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, &LexError{
			Err:  ErrInvalidNumber,
			Text: lt.Value,
			Pos:  lt.Start,
		}
	}

	tok := Number(v)
	tok.Pos = lt.Start
	return tok, nil
}
