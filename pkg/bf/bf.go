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

// Package bf loads and runs programs written in the eight-instruction tape
// language.  Programs are validated before anything is executed, and execution
// is strict: cells and the data pointer never wrap around, and running out of
// input is fatal.  Every failure can be distinguished with errors.Is against
// the errors exported here.
package bf

import (
	"errors"
	"fmt"
	"io"

	"github.com/consensys/go-brainfuck/pkg/bf/compiler"
	"github.com/consensys/go-brainfuck/pkg/bf/program"
	"github.com/consensys/go-brainfuck/pkg/bf/vm/machine"
	"github.com/consensys/go-brainfuck/pkg/bf/vm/memory"
	"github.com/consensys/go-brainfuck/pkg/util/source"
)

// CHUNK_SIZE determines how many instructions are executed between checks on
// the machine's progress.
const CHUNK_SIZE = 1024

var (
	// ErrUnmatchedOpen is reported for a loop start without a matching end.
	ErrUnmatchedOpen = errors.New(compiler.UNMATCHED_OPEN)
	// ErrUnmatchedClose is reported for a loop end without a matching start.
	ErrUnmatchedClose = errors.New(compiler.UNMATCHED_CLOSE)
	// ErrPointerOverflow is reported when moving right from the last cell.
	ErrPointerOverflow = memory.ErrPointerOverflow
	// ErrPointerUnderflow is reported when moving left from the first cell.
	ErrPointerUnderflow = memory.ErrPointerUnderflow
	// ErrCellOverflow is reported when incrementing a cell holding 255.
	ErrCellOverflow = memory.ErrCellOverflow
	// ErrCellUnderflow is reported when decrementing a cell holding 0.
	ErrCellUnderflow = memory.ErrCellUnderflow
	// ErrInput is reported when input is exhausted or cannot be read.
	ErrInput = machine.ErrInput
	// ErrOutput is reported when output cannot be written.
	ErrOutput = machine.ErrOutput
)

// Load validates a given source text and translates it into a program.  If the
// loops of the program are unbalanced, then an error is returned covering every
// unmatched loop symbol.
func Load(text string) (program.Program, error) {
	var srcfile = source.NewSourceFile("", []byte(text))
	//
	prog, errs := compiler.Compile(*srcfile)
	//
	if len(errs) > 0 {
		return program.Program{}, syntaxErrors(errs)
	}
	//
	return prog, nil
}

// Run loads a given source text and executes it to completion, reading from
// the given input and writing to the given output.  A program which never
// terminates causes Run to never return.
func Run(text string, input io.Reader, output io.Writer) error {
	prog, err := Load(text)
	//
	if err != nil {
		return err
	}
	//
	_, err = machine.ExecuteAll(machine.New(prog, input, output), CHUNK_SIZE)
	//
	return err
}

// Convert syntax errors into a single error which can be matched against the
// exported kinds.
func syntaxErrors(errs []source.SyntaxError) error {
	var wrapped = make([]error, len(errs))
	//
	for i, e := range errs {
		var (
			kind = ErrUnmatchedOpen
			span = e.Span()
		)
		//
		if e.Message() == compiler.UNMATCHED_CLOSE {
			kind = ErrUnmatchedClose
		}
		//
		wrapped[i] = fmt.Errorf("%w at offset %d", kind, span.Start())
	}
	//
	return errors.Join(wrapped...)
}
