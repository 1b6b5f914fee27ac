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
package util

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/consensys/go-brainfuck/pkg/bf"
	"github.com/consensys/go-brainfuck/pkg/bf/compiler"
	"github.com/consensys/go-brainfuck/pkg/bf/vm/machine"
	"github.com/consensys/go-brainfuck/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the test programs (bf) and their corresponding input (in) and output
// (out) transcripts are found.
const TestDir = "../../testdata"

// Faults maps the message used in a ";;fault:" attribute onto the kind of
// error expected.
var Faults = map[string]error{
	"pointer overflow":    bf.ErrPointerOverflow,
	"pointer underflow":   bf.ErrPointerUnderflow,
	"cell overflow":       bf.ErrCellOverflow,
	"cell underflow":      bf.ErrCellUnderflow,
	"cannot obtain input": bf.ErrInput,
}

// CheckExecution runs a given test program, feeding it the contents of its
// input transcript (if any) and checking its output matches the output
// transcript exactly.  If the program declares an expected fault, then
// execution must fail with that fault (after producing the expected output).
func CheckExecution(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.bf", TestDir, test)
		output   bytes.Buffer
	)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	input := readOptionalFile(t, fmt.Sprintf("%s/%s.in", TestDir, test))
	expected := readOptionalFile(t, fmt.Sprintf("%s/%s.out", TestDir, test))
	// Determine expected fault (if any)
	faults, errs := ExtractAttributes(srcfile, extractFault)
	//
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(faults) > 1 {
		t.Fatalf("%s declares multiple faults", filename)
	}
	// Compile the program
	prog, serrs := compiler.Compile(*srcfile)
	//
	if len(serrs) > 0 {
		t.Fatalf("%s failed to compile (%s)", filename, serrs[0].Error())
	}
	// Execute it
	_, err := machine.ExecuteAll(machine.New(prog, bytes.NewReader(input), &output), bf.CHUNK_SIZE)
	//
	if len(faults) == 0 && err != nil {
		t.Errorf("%s failed unexpectedly (%s)", filename, err.Error())
	} else if len(faults) == 1 {
		checkFault(t, filename, faults[0], err)
	}
	//
	if !bytes.Equal(expected, output.Bytes()) {
		t.Errorf("%s produced unexpected output %q (expected %q)", filename, output.String(), string(expected))
	}
}

// CheckInvalid checks that a given test program fails to compile, producing
// exactly the syntax errors it declares via ";;error:" attributes.
func CheckInvalid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s.bf", TestDir, test)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Compile source file to produce errors
	_, actual := compiler.Compile(*srcfile)
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError)
	//
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(actual) == 0 {
		t.Fatalf("%s should not have compiled", filename)
	}
	//
	checkExpectedErrors(t, filename, actual, expected)
}

func checkFault(t *testing.T, filename string, fault string, err error) {
	kind, ok := Faults[fault]
	//
	if !ok {
		t.Fatalf("%s declares unknown fault \"%s\"", filename, fault)
	} else if err == nil {
		t.Errorf("%s should have failed with \"%s\"", filename, fault)
	} else if !errors.Is(err, kind) {
		t.Errorf("%s failed with \"%s\" (expected \"%s\")", filename, err.Error(), fault)
	}
}

func checkExpectedErrors(t *testing.T, filename string, actual, expected []source.SyntaxError) {
	var (
		failed = false
		msg    = fmt.Sprintf("Error %s\n", filename)
	)
	//
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) &&
			expected[i].Message() == actual[i].Message() && expected[i].Span() == actual[i].Span() {
			continue
		}
		//
		failed = true
		//
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s\n", msg, errorToString(&actual[i]))
		}
		//
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s\n", msg, errorToString(&expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

func errorToString(err *source.SyntaxError) string {
	var (
		span = err.Span()
		line = err.FirstEnclosingLine()
		col  = span.Start() - line.Start()
	)
	//
	return fmt.Sprintf("%d:%d:%d:%s", line.Number(), col+1, col+1+span.Length(), err.Message())
}

func readSourceFile(t *testing.T, filename string) *source.File {
	srcfile, err := source.ReadFile(filename)
	// Check whether this file exists (or not)
	if err != nil {
		t.Fatal(err)
	}
	//
	return srcfile
}

// Read a file which may not exist, in which case it is treated as empty.
func readOptionalFile(t *testing.T, filename string) []byte {
	data, err := os.ReadFile(filename)
	//
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		t.Fatal(err)
	}
	//
	return data
}
