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
package memory

import (
	"errors"
	"math"
)

// TAPE_SIZE determines the number of cells on a tape.
const TAPE_SIZE = 30000

// ErrPointerOverflow indicates an attempt to move the data pointer beyond the
// last cell of the tape.
var ErrPointerOverflow = errors.New("pointer overflow")

// ErrPointerUnderflow indicates an attempt to move the data pointer before the
// first cell of the tape.
var ErrPointerUnderflow = errors.New("pointer underflow")

// ErrCellOverflow indicates an attempt to increment a cell already holding
// 255.
var ErrCellOverflow = errors.New("cell overflow")

// ErrCellUnderflow indicates an attempt to decrement a cell already holding 0.
var ErrCellUnderflow = errors.New("cell underflow")

// Tape represents a fixed-size memory of byte-sized cells, along with a data
// pointer selecting the current cell.  All cells are initially zero, and the
// data pointer initially selects the first cell.  Neither cells nor the data
// pointer wrap around: any attempt to move outside their respective ranges
// fails, leaving the tape unchanged.
type Tape struct {
	cells   [TAPE_SIZE]uint8
	pointer uint
}

// NewTape constructs a new tape with all cells zeroed.
func NewTape() *Tape {
	return &Tape{}
}

// Pointer returns the current position of the data pointer.
func (p *Tape) Pointer() uint {
	return p.pointer
}

// Load returns the value of the current cell.
func (p *Tape) Load() uint8 {
	return p.cells[p.pointer]
}

// Store a given value into the current cell, overwriting its previous
// contents.
func (p *Tape) Store(value uint8) {
	p.cells[p.pointer] = value
}

// Read returns the value of the cell at a given address.
func (p *Tape) Read(address uint) uint8 {
	return p.cells[address]
}

// Right moves the data pointer one cell to the right.
func (p *Tape) Right() error {
	if p.pointer == TAPE_SIZE-1 {
		return ErrPointerOverflow
	}
	//
	p.pointer++
	//
	return nil
}

// Left moves the data pointer one cell to the left.
func (p *Tape) Left() error {
	if p.pointer == 0 {
		return ErrPointerUnderflow
	}
	//
	p.pointer--
	//
	return nil
}

// Increment the current cell by one.
func (p *Tape) Increment() error {
	if p.cells[p.pointer] == math.MaxUint8 {
		return ErrCellOverflow
	}
	//
	p.cells[p.pointer]++
	//
	return nil
}

// Decrement the current cell by one.
func (p *Tape) Decrement() error {
	if p.cells[p.pointer] == 0 {
		return ErrCellUnderflow
	}
	//
	p.cells[p.pointer]--
	//
	return nil
}
