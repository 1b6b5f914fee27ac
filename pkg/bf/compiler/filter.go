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
	"strings"

	"github.com/consensys/go-brainfuck/pkg/bf/instruction"
	"github.com/consensys/go-brainfuck/pkg/util/source"
)

// Symbol represents an instruction symbol retained from the original text,
// along with its position in that text.
type Symbol struct {
	// Character of this symbol, which is always a recognised instruction
	// symbol.
	Char rune
	// Offset of this symbol in the original text (in characters).
	Offset int
}

// Span returns the span of the original text covered by this symbol.
func (p Symbol) Span() source.Span {
	return source.NewSpan(p.Offset, p.Offset+1)
}

// Filter retains only the instruction symbols of a given text, in order.
// Everything else (including whitespace) is commentary and discarded.  This
// never fails.
func Filter(text []rune) []Symbol {
	var symbols []Symbol
	//
	for i, c := range text {
		if instruction.IsSymbol(c) {
			symbols = append(symbols, Symbol{c, i})
		}
	}
	//
	return symbols
}

// SymbolsToString converts a sequence of symbols back into a string.
func SymbolsToString(symbols []Symbol) string {
	var builder strings.Builder
	//
	for _, s := range symbols {
		builder.WriteRune(s.Char)
	}
	//
	return builder.String()
}
