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
package instruction

import "fmt"

// Instruction represents a single atomic unit of execution.  There are exactly
// eight instructions, each of which corresponds to exactly one symbol in the
// source language.  Instructions carry no operands: their effect is entirely
// determined by the state of the machine executing them.
type Instruction uint8

const (
	// PointerIncrement moves the data pointer one cell to the right (">").
	PointerIncrement Instruction = iota
	// PointerDecrement moves the data pointer one cell to the left ("<").
	PointerDecrement
	// CellIncrement increments the current cell by one ("+").
	CellIncrement
	// CellDecrement decrements the current cell by one ("-").
	CellDecrement
	// Output writes the current cell to the output stream (".").
	Output
	// Input reads one byte from the input stream into the current cell (",").
	Input
	// LoopStart begins a loop which executes whilst the current cell is
	// non-zero ("[").
	LoopStart
	// LoopEnd terminates the body of the loop begun by its matching LoopStart
	// ("]").
	LoopEnd
)

// NUM_INSTRUCTIONS determines the number of distinct instructions.
const NUM_INSTRUCTIONS = 8

// symbols maps each instruction onto its source symbol.
var symbols = [NUM_INSTRUCTIONS]rune{'>', '<', '+', '-', '.', ',', '[', ']'}

// names provides human-readable names for each instruction.
var names = [NUM_INSTRUCTIONS]string{
	"PointerIncrement", "PointerDecrement", "CellIncrement", "CellDecrement",
	"Output", "Input", "LoopStart", "LoopEnd",
}

// Parse determines the instruction corresponding to a given source symbol, or
// returns false if the symbol is not an instruction (i.e. is commentary).
func Parse(symbol rune) (Instruction, bool) {
	switch symbol {
	case '>':
		return PointerIncrement, true
	case '<':
		return PointerDecrement, true
	case '+':
		return CellIncrement, true
	case '-':
		return CellDecrement, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	}
	//
	return 0, false
}

// IsSymbol checks whether a given character is one of the eight recognised
// instruction symbols.
func IsSymbol(symbol rune) bool {
	_, ok := Parse(symbol)
	return ok
}

// Symbol returns the source symbol for this instruction.  This is the inverse
// of Parse.
func (p Instruction) Symbol() rune {
	if p >= NUM_INSTRUCTIONS {
		panic(fmt.Sprintf("invalid instruction (%d)", p))
	}
	//
	return symbols[p]
}

// IsLoop checks whether this instruction is either a LoopStart or a LoopEnd.
func (p Instruction) IsLoop() bool {
	return p == LoopStart || p == LoopEnd
}

func (p Instruction) String() string {
	if p >= NUM_INSTRUCTIONS {
		return fmt.Sprintf("Instruction(%d)", uint8(p))
	}
	//
	return names[p]
}
