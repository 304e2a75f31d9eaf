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

// Evaluate reduces a postfix token sequence to a single value. Arithmetic
// follows IEEE-754: dividing by zero gives a signed infinity and NaN is a
// valid result. Errors are of type *[EvalError].
func Evaluate(postfix []Token) (float64, error) {
	var values stack[float64]

	for i := range postfix {
		t := postfix[i]

		if t.Kind == KindNumber {
			values.push(t.Num)
			continue
		}

		if t.is(OpNeg) {
			x, ok := values.pop()
			if !ok {
				return 0, &EvalError{Err: ErrMalformedExpression, Token: &t, Depth: len(values)}
			}
			values.push(-x)
			continue
		}

		if !t.Op.binary() {
			return 0, &EvalError{Err: ErrInvalidOperator, Token: &t, Depth: len(values)}
		}

		if len(values) < 2 {
			return 0, &EvalError{Err: ErrMalformedExpression, Token: &t, Depth: len(values)}
		}
		right, _ := values.pop()
		left, _ := values.pop()
		values.push(apply(t.Op, left, right))
	}

	if len(values) != 1 {
		return 0, &EvalError{Err: ErrMalformedExpression, Depth: len(values)}
	}

	return values[0], nil
}

// apply computes left o right. o must be a binary operator.
func apply(o Op, left, right float64) float64 {
	switch o {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpMul:
		return left * right
	case OpDiv:
		return left / right
	default:
		panic("rpncalc: apply called with non-binary operator " + o.String())
	}
}
