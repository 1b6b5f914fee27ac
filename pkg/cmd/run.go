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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-brainfuck/pkg/bf"
	"github.com/consensys/go-brainfuck/pkg/bf/compiler"
	"github.com/consensys/go-brainfuck/pkg/bf/vm/machine"
	"github.com/consensys/go-brainfuck/pkg/util"
	"github.com/consensys/go-brainfuck/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file]",
	Short: "Run a brainfuck program.",
	Long: `Run a brainfuck program, reading its input from stdin (or a given file) and
writing its output to stdout.  Syntax errors are reported before anything
executes.  Execution stops at the first fault (e.g. a cell overflow).`,
	Aliases: []string{"exec"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			filename  = GetString(cmd, "file")
			inputName = GetString(cmd, "input")
			stats     = GetFlag(cmd, "stats")
			input     io.Reader
		)
		// Positional argument is an alternative to --file
		if filename == "" && len(args) == 1 {
			filename = args[0]
		} else if filename == "" || len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		srcfile := readSourceFile(filename)
		// Determine input stream
		if inputName != "" {
			file, err := os.Open(inputName)
			if err != nil {
				fmt.Println(err)
				os.Exit(3)
			}
			//
			defer file.Close()
			//
			input = bufio.NewReader(file)
		} else {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				log.Debug("reading program input from terminal")
			}
			//
			input = bufio.NewReader(os.Stdin)
		}
		// Write directly to a terminal, otherwise buffer.
		output := newOutput(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
		//
		errs, err := executeSourceFile(*srcfile, input, output, stats)
		//
		if ferr := output.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("%w: %w", machine.ErrOutput, ferr)
		}
		//
		if len(errs) > 0 {
			for _, e := range errs {
				writeSyntaxError(os.Stdout, &e)
			}
			//
			os.Exit(4)
		} else if err != nil {
			log.Error(err)
			os.Exit(5)
		}
	},
}

// Execute a given source file to completion.  If the source file contains
// syntax errors, then these are returned and nothing is executed.  Otherwise,
// any fault arising during execution is returned.
func executeSourceFile(srcfile source.File, input io.Reader, output io.Writer,
	stats bool) ([]source.SyntaxError, error) {
	//
	prog, errs := compiler.Compile(srcfile)
	//
	if len(errs) > 0 {
		return errs, nil
	}
	//
	var (
		perf = util.NewPerfStats()
		m    = machine.New(prog, input, output)
	)
	//
	_, err := machine.ExecuteAll(m, bf.CHUNK_SIZE)
	//
	summary := perf.Summary(fmt.Sprintf("executing %s", srcfile.Filename()), m.Steps())
	//
	if stats {
		log.Info(summary)
	} else {
		log.Debug(summary)
	}
	//
	return nil, err
}

// flushWriter is a writer which must be flushed once writing is complete.
type flushWriter interface {
	io.Writer
	Flush() error
}

// directWriter passes writes straight through, and has nothing to flush.
type directWriter struct {
	io.Writer
}

func (directWriter) Flush() error {
	return nil
}

// Construct the output stream for a program.  Output going to an interactive
// terminal must appear as soon as it is written, whilst anything else can be
// buffered.
func newOutput(out io.Writer, interactive bool) flushWriter {
	if interactive {
		return directWriter{out}
	}
	//
	return bufio.NewWriter(out)
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("file", "f", "", "specifies which file to load")
	runCmd.Flags().StringP("input", "i", "", "read program input from a file (instead of stdin)")
	runCmd.Flags().Bool("stats", false, "report execution time, steps and memory usage")
}
