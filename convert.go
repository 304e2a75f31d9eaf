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

// Convert reorders infix tokens into postfix order using the shunting-yard
// algorithm. Parentheses are resolved and do not appear in the result.
//
// A '-' at the start of the expression or directly after '(' is unary and is
// replaced by [OpNeg]; a '+' in that position is dropped. All operators,
// including OpNeg, are left-associative. Errors are of type *[SyntaxError].
//
// Convert only checks parenthesis balance and unary position. Sequences that
// are otherwise ill-formed, such as "2 3" or "3+", convert successfully and
// are rejected by [Evaluate]. So is "--3": the second '-' is binary and
// converts to "U 3 -", which leaves the unary minus without an operand.
func Convert(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops stack[Token]

	var prev *Token
	for i := range tokens {
		t := tokens[i]

		switch {
		case t.Kind == KindNumber:
			out = append(out, t)

		case t.is(OpOpen):
			ops.push(t)

		case t.is(OpClose):
			for {
				top, ok := ops.pop()
				if !ok {
					return nil, &SyntaxError{Err: ErrUnmatchedCloseParen, Op: t.Op, Pos: t.Pos}
				}
				if top.is(OpOpen) {
					break
				}
				out = append(out, top)
			}

		case t.Op.binary():
			if prev == nil || prev.is(OpOpen) {
				switch t.Op {
				case OpSub:
					neg := Operator(OpNeg)
					neg.Pos = t.Pos
					ops.push(neg)
				case OpAdd:
					// Unary plus is a no-op.
				default:
					return nil, &SyntaxError{Err: ErrInvalidUnaryOperator, Op: t.Op, Pos: t.Pos}
				}
				break
			}

			for {
				top, ok := ops.peek()
				if !ok || !(top.is(OpNeg) || top.Op.binary() && top.Op.precedence() >= t.Op.precedence()) {
					break
				}
				_, _ = ops.pop()
				out = append(out, top)
			}
			ops.push(t)

		default:
			return nil, &SyntaxError{Err: ErrInvalidOperator, Op: t.Op, Pos: t.Pos}
		}

		prev = &tokens[i]
	}

	for {
		top, ok := ops.pop()
		if !ok {
			break
		}
		if top.is(OpOpen) {
			return nil, &SyntaxError{Err: ErrUnmatchedOpenParen, Op: top.Op, Pos: top.Pos}
		}
		out = append(out, top)
	}

	return out, nil
}
