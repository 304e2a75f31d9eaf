// Copyright 2023 Google LLC
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

// stack is a LIFO used for operators during conversion and for values during
// evaluation.
type stack[V any] []V

func (s *stack[V]) push(v V) {
	*s = append(*s, v)
}

// pop removes and returns the top of the stack. ok is false if the stack is
// empty.
func (s *stack[V]) pop() (v V, ok bool) {
	if len(*s) == 0 {
		return v, false
	}

	v = (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]

	return v, true
}

// peek returns the top of the stack without removing it.
func (s stack[V]) peek() (v V, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	return s[len(s)-1], true
}
