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
	"errors"
	"fmt"

	"github.com/consensys/go-brainfuck/pkg/bf/instruction"
)

// ErrInput indicates that a byte could not be read from the input stream,
// either because it was exhausted or because reading failed.
var ErrInput = errors.New("cannot obtain input")

// ErrOutput indicates that a byte could not be written to the output stream.
var ErrOutput = errors.New("cannot write output")

// ErrInternal indicates the machine reached an inconsistent state, such as an
// instruction pointer outside of the program.
var ErrInternal = errors.New("internal error")

// Fault describes a failure which aborted execution of a machine.  The
// underlying cause identifies the kind of fault (e.g. memory.ErrCellOverflow,
// ErrInput, etc) and can be examined with errors.Is.
type Fault struct {
	// Underlying cause
	Err error
	// Position of the offending instruction.
	PC uint
	// Position of the data pointer at the point of failure.
	Pointer uint
	// Offending instruction.
	Instruction instruction.Instruction
}

func (p *Fault) Error() string {
	return fmt.Sprintf("%s (instruction %d, pointer %d)", p.Err, p.PC, p.Pointer)
}

// Unwrap returns the underlying cause of this fault.
func (p *Fault) Unwrap() error {
	return p.Err
}
