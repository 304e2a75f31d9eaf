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

// Package rpncalc evaluates arithmetic formulas such as "-2*(3+4)+5/6".
//
// Evaluation is a pipeline of three stages: [Tokenize] splits the text into
// numbers and operators, [Convert] reorders them into Reverse Polish
// (postfix) notation and [Evaluate] reduces the postfix sequence on a value
// stack. [Eval] runs all three and returns the error of the failing stage.
//
// [Engine] wraps the pipeline for live input validation, where half-typed
// text like "3+" is routine: it reports "no value"
// instead of an error.
//
// Only the four binary operators, unary minus and plus, parentheses, plain
// decimal numbers and spaces are understood.
package rpncalc
