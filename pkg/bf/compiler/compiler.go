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
	"fmt"

	"github.com/consensys/go-brainfuck/pkg/bf/instruction"
	"github.com/consensys/go-brainfuck/pkg/bf/program"
	"github.com/consensys/go-brainfuck/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Compile a given source file into a program.  This filters out commentary,
// validates that loops are properly balanced and, finally, translates the
// remaining symbols into instructions.  If any syntax errors arise, then no
// program is produced.
func Compile(srcfile source.File) (program.Program, []source.SyntaxError) {
	var symbols = Filter(srcfile.Contents())
	// Check loops are balanced
	jumps, errors := Validate(&srcfile, symbols)
	//
	if len(errors) > 0 {
		return program.Program{}, errors
	}
	//
	prog := program.New(Translate(symbols), jumps)
	//
	log.Debug(fmt.Sprintf("compiled %s into %d instructions (%d loops)", srcfile.Filename(), prog.Len(),
		prog.NumLoops()))
	//
	return prog, nil
}

// Translate maps each symbol onto its corresponding instruction, preserving
// order.  Every symbol must be a recognised instruction symbol (as produced by
// Filter).
func Translate(symbols []Symbol) []instruction.Instruction {
	var code = make([]instruction.Instruction, len(symbols))
	//
	for i, s := range symbols {
		insn, ok := instruction.Parse(s.Char)
		// Sanity check
		if !ok {
			panic(fmt.Sprintf("unknown instruction symbol '%c' at offset %d", s.Char, s.Offset))
		}
		//
		code[i] = insn
	}
	//
	return code
}
