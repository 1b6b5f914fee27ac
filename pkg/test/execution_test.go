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
package test

import (
	"testing"

	"github.com/consensys/go-brainfuck/pkg/test/util"
)

// ===================================================================
// Programs
// ===================================================================

func Test_Exec_HelloWorld(t *testing.T) {
	util.CheckExecution(t, "exec/hello_world")
}

func Test_Exec_HelloPrefix(t *testing.T) {
	util.CheckExecution(t, "exec/hello_prefix")
}

func Test_Exec_Digits(t *testing.T) {
	util.CheckExecution(t, "exec/digits")
}

func Test_Exec_Comments(t *testing.T) {
	util.CheckExecution(t, "exec/comments")
}

func Test_Exec_Empty(t *testing.T) {
	util.CheckExecution(t, "exec/empty")
}

// ===================================================================
// Loops
// ===================================================================

func Test_Exec_SkipLoop(t *testing.T) {
	util.CheckExecution(t, "exec/skip_loop")
}

func Test_Exec_NestedLoops(t *testing.T) {
	util.CheckExecution(t, "exec/nested_loops")
}

// ===================================================================
// Input / Output
// ===================================================================

func Test_Exec_Echo(t *testing.T) {
	util.CheckExecution(t, "exec/echo")
}

func Test_Exec_EchoLoop(t *testing.T) {
	util.CheckExecution(t, "exec/echo_loop")
}

func Test_Exec_Cat(t *testing.T) {
	util.CheckExecution(t, "exec/cat")
}

// ===================================================================
// Faults
// ===================================================================

func Test_Exec_CellUnderflow(t *testing.T) {
	util.CheckExecution(t, "exec/cell_underflow")
}

func Test_Exec_CellOverflow(t *testing.T) {
	util.CheckExecution(t, "exec/cell_overflow")
}

func Test_Exec_PointerUnderflow(t *testing.T) {
	util.CheckExecution(t, "exec/pointer_underflow")
}

func Test_Exec_PointerOverflow(t *testing.T) {
	util.CheckExecution(t, "exec/pointer_overflow")
}
