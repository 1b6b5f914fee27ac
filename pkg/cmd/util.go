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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-brainfuck/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Enable debug logging if requested.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Read a given source file from disk, or exit if this is not possible.
func readSourceFile(filename string) *source.File {
	log.Debug(fmt.Sprintf("reading source file %s", filename))
	//
	srcfile, err := source.ReadFile(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return srcfile
}

// Print a syntax error with appropriate highlighting.
func writeSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(0, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", length))
}
