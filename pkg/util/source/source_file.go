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
package source

import (
	"fmt"
	"os"
)

// ReadFile reads a given source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// Line provides information about a given line within the original text.
// This includes the line number (counting from 1), and the span of the line
// within the original text.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source file (typically stored on disk, though
// possibly constructed directly from a string).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes so that offsets correspond to characters
	contents := []rune(string(bytes))
	return &File{filename, contents}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Lines splits this source file into its physical lines.  Line terminators are
// not included in the span of any line.
func (s *File) Lines() []Line {
	var (
		lines []Line
		start = 0
	)
	//
	for i, c := range s.contents {
		if c == '\n' {
			lines = append(lines, Line{s.contents, Span{start, i}, len(lines) + 1})
			start = i + 1
		}
	}
	// Final line (which may be empty)
	return append(lines, Line{s.contents, Span{start, len(s.contents)}, len(lines) + 1})
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(s.contents); i++ {
		if i == span.start {
			end := findEndOfLine(i, s.contents)
			return Line{s.contents, Span{start, end}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// Span represents a contiguous slice of the original text.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.  This allows us to determine the enclosing line, etc.
type Span struct {
	// The first character of this span in the original text.
	start int
	// One past the final character of this span in the original text.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the starting index of this span in the original text.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original text.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p *Span) Length() int {
	return p.end - p.start
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Character span of the text where the error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Find the end of the enclosing line
func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
