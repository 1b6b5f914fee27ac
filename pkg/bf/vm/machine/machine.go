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
package machine

import (
	"bytes"
	"fmt"
	"io"

	"github.com/consensys/go-brainfuck/pkg/bf/instruction"
	"github.com/consensys/go-brainfuck/pkg/bf/program"
	"github.com/consensys/go-brainfuck/pkg/bf/vm/memory"
)

// ExecuteAll executes a given machine to completion in chunks of n steps,
// returning the number of steps executed and/or any error arising.
func ExecuteAll(machine Core, n uint) (uint, error) {
	var nsteps uint
	//
	for {
		// Execute upto n steps
		m, err := machine.Execute(n)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < n {
			return nsteps, err
		}
	}
}

// Core captures the essence of an executing machine: something which can be
// executed a given number of steps at a time.
type Core interface {
	// Execute the machine for the given number of steps, returning the actual
	// number of steps executed and an error (if execution failed).  Fewer steps
	// than requested are executed only when the machine terminates or fails.
	Execute(steps uint) (uint, error)
}

// Machine executes a given program over a tape, reading from a given input
// stream and writing to a given output stream.  A machine runs until its
// instruction pointer reaches the end of the program (at which point it has
// terminated), or until a fault arises.  Faults are not recoverable: once a
// machine has faulted, it should not be executed further.
type Machine struct {
	// Program being executed
	program program.Program
	// Tape holding all cells and the data pointer.
	tape *memory.Tape
	// Instruction pointer (a.k.a the program counter).
	pc uint
	// Number of instructions executed so far.
	steps uint
	// Input stream from which bytes are consumed, one at a time.
	input io.Reader
	// Output stream to which bytes are written, one at a time.
	output io.Writer
	// Scratch buffer for input / output.
	buffer [1]byte
}

// New constructs a machine ready to execute a given program from its first
// instruction, using a freshly zeroed tape.  A nil input behaves as an empty
// stream, whilst a nil output discards everything written.
func New(prog program.Program, input io.Reader, output io.Writer) *Machine {
	if input == nil {
		input = bytes.NewReader(nil)
	}
	//
	if output == nil {
		output = io.Discard
	}
	//
	return &Machine{
		program: prog,
		tape:    memory.NewTape(),
		input:   input,
		output:  output,
	}
}

// PC returns the current position of the instruction pointer.
func (p *Machine) PC() uint {
	return p.pc
}

// Steps returns the total number of instructions executed so far.
func (p *Machine) Steps() uint {
	return p.steps
}

// Tape returns the tape of this machine.
func (p *Machine) Tape() *memory.Tape {
	return p.tape
}

// Terminated checks whether this machine has reached the end of its program.
func (p *Machine) Terminated() bool {
	return p.pc == p.program.Len()
}

// Execute implementation for the Core interface.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for nsteps < steps && !p.Terminated() {
		if err := p.step(); err != nil {
			return nsteps, err
		}
		//
		nsteps++
		p.steps++
	}
	//
	return nsteps, nil
}

// Execute the instruction at the current instruction pointer, and update the
// instruction pointer accordingly.
func (p *Machine) step() error {
	var err error
	// Sanity check
	if p.pc >= p.program.Len() {
		return p.fault(fmt.Errorf("%w: instruction pointer %d out of bounds", ErrInternal, p.pc))
	}
	//
	switch p.program.Instruction(p.pc) {
	case instruction.PointerIncrement:
		err = p.tape.Right()
	case instruction.PointerDecrement:
		err = p.tape.Left()
	case instruction.CellIncrement:
		err = p.tape.Increment()
	case instruction.CellDecrement:
		err = p.tape.Decrement()
	case instruction.Output:
		err = p.write()
	case instruction.Input:
		err = p.read()
	case instruction.LoopStart:
		if p.tape.Load() == 0 {
			// Skip loop body entirely
			p.pc = p.program.Target(p.pc) + 1
			return nil
		}
	case instruction.LoopEnd:
		// Return to the loop start, which re-evaluates the current cell.
		p.pc = p.program.Target(p.pc)
		return nil
	default:
		err = fmt.Errorf("%w: unknown instruction", ErrInternal)
	}
	//
	if err != nil {
		return p.fault(err)
	}
	//
	p.pc++
	//
	return nil
}

// Write the current cell to the output stream.
func (p *Machine) write() error {
	p.buffer[0] = p.tape.Load()
	//
	if _, err := p.output.Write(p.buffer[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	//
	return nil
}

// Read exactly one byte from the input stream into the current cell.
func (p *Machine) read() error {
	if _, err := io.ReadFull(p.input, p.buffer[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	//
	p.tape.Store(p.buffer[0])
	//
	return nil
}

func (p *Machine) fault(err error) *Fault {
	var insn = instruction.Instruction(instruction.NUM_INSTRUCTIONS)
	//
	if p.pc < p.program.Len() {
		insn = p.program.Instruction(p.pc)
	}
	//
	return &Fault{err, p.pc, p.tape.Pointer(), insn}
}
