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
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-brainfuck/pkg/util/source"
)

// Attribute provides a generic mechanism for extracting attributes from the
// beginning of a file.  Attributes are lines of commentary starting with ";;",
// and must not contain any instruction symbols.  An attribute parses a given
// line (assuming it matches) producing an item or an error.
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// ExtractAttributes extracts any matching attributes at the beginning of a
// source file.  Extraction stops at the first line which matches no attribute.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines   = srcfile.Lines()
		items   []T
		errors  []error
		matched = true
	)
	//
	for i := 0; i < len(lines) && matched; i++ {
		matched = false
		//
		for _, attribute := range attributes {
			ok, item, err := attribute(i, lines, srcfile)
			//
			if err != nil {
				errors = append(errors, err)
			} else if ok {
				items = append(items, item)
			}
			//
			matched = matched || ok
		}
	}
	//
	return items, errors
}

// Extract the syntax error described by a given line of the source file (if
// it describes one).  The expected format is ";;error:L:S:E:msg" where L is a
// line number, S-E is the column range (columns counted from 1, E exclusive),
// and msg the expected message.
func extractSyntaxError(lineno int, lines []source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	var (
		line     = lines[lineno]
		contents = line.String()
	)
	//
	if !strings.HasPrefix(contents, ";;error:") {
		return false, source.SyntaxError{}, nil
	}
	//
	var splits = strings.SplitN(contents, ":", 5)
	//
	if len(splits) != 5 {
		return true, source.SyntaxError{}, fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:L:S:E:msg\"",
			contents)
	}
	//
	var numbers [3]int
	//
	for i := range numbers {
		n, err := strconv.Atoi(splits[i+1])
		if err != nil || n <= 0 {
			return true, source.SyntaxError{}, fmt.Errorf("invalid position \"%s\" in \"%s\"", splits[i+1], contents)
		}
		//
		numbers[i] = n
	}
	//
	span, err := determineFileSpan(numbers[0], numbers[1], numbers[2], lines)
	//
	return true, *srcfile.SyntaxError(span, splits[4]), err
}

// Extract the expected fault described by a given line of the source file (if
// it describes one).  The expected format is ";;fault:msg".
func extractFault(lineno int, lines []source.Line, _ *source.File) (bool, string, error) {
	var (
		line     = lines[lineno]
		contents = line.String()
	)
	//
	if !strings.HasPrefix(contents, ";;fault:") {
		return false, "", nil
	}
	//
	return true, strings.TrimPrefix(contents, ";;fault:"), nil
}

// Determine the span that a given line and column range corresponds to.  We
// need the line offsets so that the computed span includes the starting offset
// of the relevant line.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Subtract one from each since column numbering starts from 1.
	start--
	end--
	//
	if start >= line.Length() || end > line.Length() || start > end {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (outside line)", lineno, start+1, end+1)
	}
	//
	return source.NewSpan(start+line.Start(), end+line.Start()), nil
}
