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
package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-brainfuck/pkg/bf"
	"github.com/consensys/go-brainfuck/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_Run_01(t *testing.T) {
	var (
		output  bytes.Buffer
		srcfile = source.NewSourceFile("echo.bf", []byte("read , write ."))
	)
	//
	errs, err := executeSourceFile(*srcfile, strings.NewReader("Z"), &output, false)
	require.Empty(t, errs)
	require.NoError(t, err)
	require.Equal(t, "Z", output.String())
}

func Test_Run_02(t *testing.T) {
	var (
		output  bytes.Buffer
		srcfile = source.NewSourceFile("bad.bf", []byte("+.]"))
	)
	//
	errs, err := executeSourceFile(*srcfile, strings.NewReader(""), &output, true)
	require.Len(t, errs, 1)
	require.NoError(t, err)
	// Nothing executed
	require.Empty(t, output.String())
}

func Test_Run_03(t *testing.T) {
	var (
		output  bytes.Buffer
		srcfile = source.NewSourceFile("underflow.bf", []byte("+.--"))
	)
	//
	errs, err := executeSourceFile(*srcfile, nil, &output, true)
	require.Empty(t, errs)
	require.ErrorIs(t, err, bf.ErrCellUnderflow)
	require.Equal(t, "\x01", output.String())
}

func Test_Run_04(t *testing.T) {
	var (
		output bytes.Buffer
		out    = newOutput(&output, false)
	)
	// Buffered until flushed
	_, err := out.Write([]byte("ab"))
	require.NoError(t, err)
	require.Empty(t, output.String())
	require.NoError(t, out.Flush())
	require.Equal(t, "ab", output.String())
	require.IsType(t, &bufio.Writer{}, out)
}

func Test_Run_05(t *testing.T) {
	var (
		output bytes.Buffer
		out    = newOutput(&output, true)
	)
	// Written through immediately
	_, err := out.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, "ab", output.String())
	require.NoError(t, out.Flush())
}

func Test_Check_01(t *testing.T) {
	checkSyntaxErrors(t, "ok.bf", "+[-]")
}

func Test_Check_02(t *testing.T) {
	checkSyntaxErrors(t, "open.bf", "+[\n-",
		"open.bf:1:2-3 unmatched open", "", "+[", " ^")
}

func Test_Check_03(t *testing.T) {
	checkSyntaxErrors(t, "close.bf", "loop\n  ]  \n[",
		"close.bf:2:3-4 unmatched close", "", "  ]  ", "  ^",
		"close.bf:3:1-2 unmatched open", "", "[", "^")
}

// ===================================================================
// Framework
// ===================================================================

func checkSyntaxErrors(t *testing.T, filename string, text string, expected ...string) {
	var (
		output  bytes.Buffer
		srcfile = source.NewSourceFile(filename, []byte(text))
		nerrs   = checkSourceFile(&output, *srcfile)
	)
	//
	require.Equal(t, len(expected)/4, nerrs)
	//
	if len(expected) == 0 {
		require.Empty(t, output.String())
	} else {
		require.Equal(t, strings.Join(expected, "\n")+"\n", output.String())
	}
}
