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
	"testing"

	"github.com/consensys/go-brainfuck/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_Attribute_01(t *testing.T) {
	var srcfile = source.NewSourceFile("test", []byte(";;error:2:2:3:unmatched open\n [\n"))
	//
	errs, problems := ExtractAttributes(srcfile, extractSyntaxError)
	require.Empty(t, problems)
	require.Len(t, errs, 1)
	require.Equal(t, "unmatched open", errs[0].Message())
	require.Equal(t, source.NewSpan(30, 31), errs[0].Span())
}

func Test_Attribute_02(t *testing.T) {
	var srcfile = source.NewSourceFile("test", []byte(";;fault:cell underflow\n;;fault:cell overflow\ncomment\n;;fault:ignored\n"))
	//
	faults, problems := ExtractAttributes(srcfile, extractFault)
	require.Empty(t, problems)
	// Extraction stops at the first line which is not an attribute
	require.Equal(t, []string{"cell underflow", "cell overflow"}, faults)
}

func Test_Attribute_03(t *testing.T) {
	var srcfile = source.NewSourceFile("test", []byte(";;error:x:1:2:oops\n"))
	//
	_, problems := ExtractAttributes(srcfile, extractSyntaxError)
	require.Len(t, problems, 1)
}

func Test_Attribute_04(t *testing.T) {
	var srcfile = source.NewSourceFile("test", []byte(";;error:1:1:2\n"))
	//
	_, problems := ExtractAttributes(srcfile, extractSyntaxError)
	require.Len(t, problems, 1)
}

func Test_Attribute_05(t *testing.T) {
	// Span beyond the end of the line
	var srcfile = source.NewSourceFile("test", []byte(";;error:2:5:6:unmatched open\n[\n"))
	//
	_, problems := ExtractAttributes(srcfile, extractSyntaxError)
	require.Len(t, problems, 1)
}
