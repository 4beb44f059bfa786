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

	"github.com/consensys/go-flatten/pkg/util/source"
)

// Extract the syntax error described by a given line in the source file.  Such
// lines have the form ";;error:line:start-end:message".
func extractSyntaxError(lineno int, lines []source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, ";;error") {
		return false, source.SyntaxError{}, nil
	}
	//
	line, start, end, msg, err := parseExpectedErrorLine(contents)
	if err != nil {
		return true, source.SyntaxError{}, err
	}
	//
	span, err := determineFileSpan(line, start, end, lines)
	//
	return true, *srcfile.SyntaxError(span, msg), err
}

// Extract the expected failure described by a given line in the source file.
// Such lines have the form ";;fails:message", where message must occur in the
// error reported when flattening.
func extractFailure(lineno int, lines []source.Line, _ *source.File) (bool, string, error) {
	var contents = lines[lineno].String()
	//
	if msg, ok := strings.CutPrefix(contents, ";;fails:"); ok {
		return true, msg, nil
	} else if strings.HasPrefix(contents, ";;fails") {
		return true, "", fmt.Errorf("malformed expected failure \"%s\", should be e.g. \";;fails:msg\"", contents)
	}
	//
	return false, "", nil
}

func parseExpectedErrorLine(contents string) (line, start, end int, msg string, err error) {
	var splits = strings.Split(contents, ":")
	//
	if len(splits) < 4 {
		return 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:X:Y-Z:msg\"", contents)
	}
	//
	if line, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, 0, "", fmt.Errorf("invalid line \"%s\" (%s)", splits[1], err.Error())
	} else if line == 0 {
		return 0, 0, 0, "", fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", splits[1])
	}
	//
	if start, end, err = parseExpectedErrorSpan(splits[2]); err != nil {
		return 0, 0, 0, "", err
	}
	// Messages may themselves contain colons
	msg = strings.Join(splits[3:], ":")
	//
	return line, start, end, msg, nil
}

func parseExpectedErrorSpan(spanStr string) (start, end int, err error) {
	var splits = strings.Split(spanStr, "-")
	//
	if len(splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", spanStr)
	}
	//
	if start, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", spanStr, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", spanStr)
	}
	//
	if end, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", spanStr, err.Error())
	}
	//
	return start, end, nil
}

// Determine the file span corresponding to a given line and column range, where
// both lines and columns are numbered from 1.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	start--
	end--
	//
	if start >= line.Length() || end > line.Length() {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", lineno, start, end)
	}
	//
	return source.NewSpan(start+line.Start(), end+line.Start()), nil
}
