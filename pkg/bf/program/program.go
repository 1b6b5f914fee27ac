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
package program

import (
	"fmt"
	"strings"

	"github.com/consensys/go-brainfuck/pkg/bf/instruction"
)

// Program represents a validated sequence of instructions, along with a jump
// table identifying the matching partner of every loop instruction.  A program
// is read-only once constructed.  The jump table is what makes loop handling
// constant time: a LoopStart at position p is matched by the LoopEnd at
// position Target(p), and vice versa.
type Program struct {
	// Code defines the instructions of this program in order.
	code []instruction.Instruction
	// Jumps maps every loop instruction to the position of its matching
	// partner.  Entries for non-loop instructions are unused.
	jumps []uint
}

// New constructs a new program from a given instruction sequence and
// corresponding jump table.  The jump table must have been computed by
// validating the instruction sequence, and is checked for consistency here.
func New(code []instruction.Instruction, jumps []uint) Program {
	if len(code) != len(jumps) {
		panic(fmt.Sprintf("inconsistent jump table (%d instructions, %d jumps)", len(code), len(jumps)))
	}
	//
	for pc, insn := range code {
		if !insn.IsLoop() {
			continue
		}
		//
		target := jumps[pc]
		// Sanity check target
		if target >= uint(len(code)) || !code[target].IsLoop() || code[target] == insn ||
			jumps[target] != uint(pc) {
			panic(fmt.Sprintf("invalid jump target %d for %s at %d", target, insn, pc))
		}
	}
	//
	return Program{code, jumps}
}

// Len returns the number of instructions in this program.
func (p Program) Len() uint {
	return uint(len(p.code))
}

// Instruction returns the instruction at a given position in this program.
func (p Program) Instruction(pc uint) instruction.Instruction {
	return p.code[pc]
}

// Instructions returns the instructions making up this program.  The returned
// slice must not be modified.
func (p Program) Instructions() []instruction.Instruction {
	return p.code
}

// Target returns the position of the loop instruction matching that at the
// given position.  For a LoopStart, this identifies its LoopEnd; for a LoopEnd
// its LoopStart.
func (p Program) Target(pc uint) uint {
	if !p.code[pc].IsLoop() {
		panic(fmt.Sprintf("no jump target for %s at %d", p.code[pc], pc))
	}
	//
	return p.jumps[pc]
}

// NumLoops returns the number of loops in this program.
func (p Program) NumLoops() uint {
	var count uint
	//
	for _, insn := range p.code {
		if insn == instruction.LoopStart {
			count++
		}
	}
	//
	return count
}

// String returns the source symbols for this program which, by construction,
// are exactly the instruction symbols of the original source.
func (p Program) String() string {
	var builder strings.Builder
	//
	for _, insn := range p.code {
		builder.WriteRune(insn.Symbol())
	}
	//
	return builder.String()
}
