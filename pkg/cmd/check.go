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

	"github.com/consensys/go-brainfuck/pkg/bf/compiler"
	"github.com/consensys/go-brainfuck/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file1.bf file2.bf ...",
	Short: "Check brainfuck programs are well-formed.",
	Long:  `Check that the loops of one or more brainfuck programs are balanced, without executing them.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var nerrors = 0
		//
		for _, filename := range args {
			nerrors += checkSourceFile(os.Stdout, *readSourceFile(filename))
		}
		//
		if nerrors > 0 {
			os.Exit(4)
		}
	},
}

// Check a given source file, reporting any syntax errors found and returning
// how many there were.
func checkSourceFile(out io.Writer, srcfile source.File) int {
	prog, errs := compiler.Compile(srcfile)
	//
	for _, e := range errs {
		writeSyntaxError(out, &e)
	}
	//
	if len(errs) == 0 {
		log.Debug(fmt.Sprintf("%s is well-formed (%d instructions)", srcfile.Filename(), prog.Len()))
	}
	//
	return len(errs)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
