// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package compiler

import (
	"slices"

	"github.com/consensys/go-brainfuck/pkg/util/collection/stack"
	"github.com/consensys/go-brainfuck/pkg/util/source"
)

// UNMATCHED_OPEN is the message reported for a "[" without a matching "]".
const UNMATCHED_OPEN = "unmatched open"

// UNMATCHED_CLOSE is the message reported for a "]" without a matching "[".
const UNMATCHED_CLOSE = "unmatched close"

// Validate checks that the loops in a given symbol stream are balanced and
// properly nested.  This is a single left-to-right pass maintaining a stack of
// open loop positions.  When successful, the jump table is returned which maps
// every loop symbol to the index of its matching partner (entries for other
// symbols are zero).  Otherwise, one syntax error is returned for every
// unmatched symbol, in order of appearance.
func Validate(srcfile *source.File, symbols []Symbol) ([]uint, []source.SyntaxError) {
	var (
		open   = stack.NewStack[uint]()
		jumps  = make([]uint, len(symbols))
		errors []source.SyntaxError
	)
	//
	for i, s := range symbols {
		switch s.Char {
		case '[':
			open.Push(uint(i))
		case ']':
			if start, ok := open.TryPop(); ok {
				jumps[start] = uint(i)
				jumps[i] = start
			} else {
				errors = append(errors, *srcfile.SyntaxError(s.Span(), UNMATCHED_CLOSE))
			}
		}
	}
	// Anything left over was never closed.
	for _, i := range open.Items() {
		errors = append(errors, *srcfile.SyntaxError(symbols[i].Span(), UNMATCHED_OPEN))
	}
	//
	if len(errors) > 0 {
		// Report in order of appearance
		slices.SortStableFunc(errors, func(l, r source.SyntaxError) int {
			lspan, rspan := l.Span(), r.Span()
			return lspan.Start() - rspan.Start()
		})
		//
		return nil, errors
	}
	//
	return jumps, nil
}
