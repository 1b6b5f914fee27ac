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
	"testing"

	"github.com/consensys/go-brainfuck/pkg/bf/instruction"
	"github.com/consensys/go-brainfuck/pkg/util/source"
	"github.com/stretchr/testify/require"
)

// ===================================================================
// Filter
// ===================================================================

func Test_Filter_01(t *testing.T) {
	checkFilter(t, "", "")
}

func Test_Filter_02(t *testing.T) {
	checkFilter(t, "><+-.,[]", "><+-.,[]")
}

func Test_Filter_03(t *testing.T) {
	checkFilter(t, "hello world\n\t", "")
}

func Test_Filter_04(t *testing.T) {
	checkFilter(t, "add one + then\nprint it .", "+.")
}

func Test_Filter_05(t *testing.T) {
	checkFilter(t, "é+ü-ß", "+-")
}

func Test_Filter_06(t *testing.T) {
	var (
		base   = "++[>+<-]>."
		padded = "  +x+ [\n> + <comment-]#>  .!"
	)
	// Inserting commentary anywhere does not change the result
	require.Equal(t, SymbolsToString(Filter([]rune(base))), SymbolsToString(Filter([]rune(padded))))
}

func Test_Filter_07(t *testing.T) {
	var symbols = Filter([]rune("a+\nb["))
	//
	require.Equal(t, []Symbol{{'+', 1}, {'[', 4}}, symbols)
}

// ===================================================================
// Validate
// ===================================================================

func Test_Validate_01(t *testing.T) {
	checkValid(t, "")
}

func Test_Validate_02(t *testing.T) {
	checkValid(t, "[[]]")
}

func Test_Validate_03(t *testing.T) {
	checkValid(t, "[][]")
}

func Test_Validate_04(t *testing.T) {
	checkValid(t, "+[>[-]<[>+<-]]")
}

func Test_Validate_05(t *testing.T) {
	checkInvalid(t, "[[]", expect(UNMATCHED_OPEN, 0))
}

func Test_Validate_06(t *testing.T) {
	checkInvalid(t, "]", expect(UNMATCHED_CLOSE, 0))
}

func Test_Validate_07(t *testing.T) {
	checkInvalid(t, "][", expect(UNMATCHED_CLOSE, 0), expect(UNMATCHED_OPEN, 1))
}

func Test_Validate_08(t *testing.T) {
	checkInvalid(t, "[", expect(UNMATCHED_OPEN, 0))
}

func Test_Validate_09(t *testing.T) {
	checkInvalid(t, "a]b]", expect(UNMATCHED_CLOSE, 1), expect(UNMATCHED_CLOSE, 3))
}

func Test_Validate_10(t *testing.T) {
	checkInvalid(t, "[ [ ] ] ] [", expect(UNMATCHED_CLOSE, 8), expect(UNMATCHED_OPEN, 10))
}

func Test_Validate_11(t *testing.T) {
	var (
		text    = "[[]][-]"
		srcfile = source.NewSourceFile("test", []byte(text))
	)
	//
	jumps, errs := Validate(srcfile, Filter(srcfile.Contents()))
	require.Empty(t, errs)
	require.Equal(t, []uint{3, 2, 1, 0, 6, 0, 4}, jumps)
}

// ===================================================================
// Compile
// ===================================================================

func Test_Compile_01(t *testing.T) {
	var srcfile = source.NewSourceFile("test", []byte("+[comment-]."))
	//
	prog, errs := Compile(*srcfile)
	require.Empty(t, errs)
	require.Equal(t, []instruction.Instruction{
		instruction.CellIncrement, instruction.LoopStart, instruction.CellDecrement,
		instruction.LoopEnd, instruction.Output,
	}, prog.Instructions())
	require.Equal(t, uint(3), prog.Target(1))
}

func Test_Compile_02(t *testing.T) {
	var srcfile = source.NewSourceFile("test", []byte("+[\n-"))
	//
	prog, errs := Compile(*srcfile)
	require.Len(t, errs, 1)
	require.Equal(t, UNMATCHED_OPEN, errs[0].Message())
	require.Equal(t, uint(0), prog.Len())
	//
	line := errs[0].FirstEnclosingLine()
	require.Equal(t, 1, line.Number())
}

func Test_Compile_03(t *testing.T) {
	// Symbols to instructions and back again is the identity
	for _, text := range []string{"", "+", "><+-.,[]", "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>."} {
		srcfile := source.NewSourceFile("test", []byte("x"+text+"y"))
		prog, errs := Compile(*srcfile)
		require.Empty(t, errs)
		require.Equal(t, text, prog.String())
	}
}

func Test_Compile_04(t *testing.T) {
	require.Panics(t, func() { Translate([]Symbol{{'x', 0}}) })
}

// ===================================================================
// Framework
// ===================================================================

type expectedError struct {
	msg    string
	offset int
}

func expect(msg string, offset int) expectedError {
	return expectedError{msg, offset}
}

func checkFilter(t *testing.T, input string, expected string) {
	var actual = SymbolsToString(Filter([]rune(input)))
	//
	if actual != expected {
		t.Errorf("filtering \"%s\": expected \"%s\", got \"%s\"", input, expected, actual)
	}
}

func checkValid(t *testing.T, input string) {
	var srcfile = source.NewSourceFile("test", []byte(input))
	//
	_, errs := Validate(srcfile, Filter(srcfile.Contents()))
	//
	if len(errs) != 0 {
		t.Errorf("\"%s\" should be valid, got %s", input, errs[0].Error())
	}
}

func checkInvalid(t *testing.T, input string, expected ...expectedError) {
	var srcfile = source.NewSourceFile("test", []byte(input))
	//
	_, errs := Validate(srcfile, Filter(srcfile.Contents()))
	//
	require.Len(t, errs, len(expected), "\"%s\"", input)
	//
	for i, err := range errs {
		span := err.Span()
		require.Equal(t, expected[i].msg, err.Message())
		require.Equal(t, expected[i].offset, span.Start())
		require.Equal(t, 1, span.Length())
	}
}
