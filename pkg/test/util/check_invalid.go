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
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-flatten/pkg/flatten"
	"github.com/consensys/go-flatten/pkg/reader"
	"github.com/consensys/go-flatten/pkg/util/field/bn254"
	"github.com/consensys/go-flatten/pkg/util/source"
)

// ErrorCompiler compiles a source file and produces zero or more errors.
type ErrorCompiler func(*source.File) []source.SyntaxError

// CheckInvalid checks that a given source file fails to read, producing
// exactly the syntax errors described by its ";;error" attributes.
func CheckInvalid(t *testing.T, test string) {
	CheckInvalidWith(t, test, func(srcfile *source.File) []source.SyntaxError {
		_, errs := reader.Read[bn254.Element](srcfile)
		return errs
	})
}

// CheckInvalidWith checks that a given source file fails to compile with a
// given compiler, producing exactly the syntax errors described by its
// ";;error" attributes.
func CheckInvalidWith(t *testing.T, test string, compiler ErrorCompiler) {
	var filename = fmt.Sprintf("%s/%s.lisp", TestDir, test)
	//
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	actual := compiler(srcfile)
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError)
	//
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	}
	//
	checkExpectedErrors(t, srcfile, actual, expected)
}

// CheckUnflattenable checks that a given source file reads successfully, but
// that flattening fails with the message given by its ";;fails" attribute.
func CheckUnflattenable(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/%s.lisp", TestDir, test)
	//
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	expected, errs := ExtractAttributes(srcfile, extractFailure)
	//
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(expected) != 1 {
		t.Fatalf("%s should have exactly one expected failure", filename)
	}
	//
	programs, serrs := reader.Read[bn254.Element](srcfile)
	//
	for _, err := range serrs {
		t.Fatalf("%s", errorToString(err))
	}
	//
	for _, program := range programs {
		if _, err := flatten.Program(program); err != nil {
			if !strings.Contains(err.Error(), expected[0]) {
				t.Fatalf("%s: expected failure \"%s\", got \"%s\"", filename, expected[0], err.Error())
			}
			//
			return
		}
	}
	//
	t.Fatalf("%s should not have flattened", filename)
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []source.SyntaxError) {
	var (
		failed = false
		msg    = fmt.Sprintf("Error %s\n", srcfile.Filename())
	)
	//
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have compiled\n", srcfile.Filename())
	}
	//
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) {
			if expected[i].Message() == actual[i].Message() && expected[i].Span() == actual[i].Span() {
				continue
			}
		}
		//
		failed = true
		//
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s\n", msg, errorToString(actual[i]))
		}
		//
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s\n", msg, errorToString(expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}

func readSourceFile(t *testing.T, filename string) *source.File {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return source.NewSourceFile(filename, bytes)
}

// Convert a syntax error into a human readable string.
func errorToString(err source.SyntaxError) string {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Ensure length does not overflow line
	length := min(line.Length()-lineOffset, span.Length())
	//
	return fmt.Sprintf("%s:%d:%d-%d %s", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
}
