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

	"go.uber.org/multierr"
)

// ReadFiles reads a given set of source files.  All files are attempted, and
// any failures are combined into a single error.
func ReadFiles(filenames ...string) ([]File, error) {
	var (
		files = make([]File, 0, len(filenames))
		errs  error
	)
	//
	for _, n := range filenames {
		bytes, err := os.ReadFile(n)
		//
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			files = append(files, *NewSourceFile(n, bytes))
		}
	}
	//
	if errs != nil {
		return nil, errs
	}
	//
	return files, nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
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

// Start returns the starting index of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Lines splits this source file into its constituent lines.
func (s *File) Lines() []Line {
	var (
		lines []Line
		start = 0
	)
	//
	for i := 0; i <= len(s.contents); i++ {
		if i == len(s.contents) || s.contents[i] == '\n' {
			lines = append(lines, Line{s.contents, Span{start, i}, len(lines) + 1})
			start = i + 1
		}
	}
	//
	return lines
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  When the span starts beyond the end of the
// file, the last line is returned.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		// Line number, counting from 1.
		num = 1
		// Starting offset of the current line.
		start = 0
	)
	//
	for i := 0; i < len(s.contents); i++ {
		if i == span.start {
			return Line{s.contents, Span{start, findEndOfLine(i, s.contents)}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Span of text where error arose.
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
	line := p.FirstEnclosingLine()
	//
	return fmt.Sprintf("%s:%d:%d-%d %s", p.srcfile.filename, line.Number(), p.span.start-line.Start()+1,
		p.span.end-line.Start()+1, p.msg)
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
