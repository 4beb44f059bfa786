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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func Test_Lines_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("ab\n\ncde"))
	lines := srcfile.Lines()
	//
	require.Len(t, lines, 3)
	assert.Equal(t, "ab", lines[0].String())
	assert.Equal(t, "", lines[1].String())
	assert.Equal(t, "cde", lines[2].String())
	assert.Equal(t, 3, lines[2].Number())
	assert.Equal(t, 4, lines[2].Start())
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("ab\ncde fg"))
	err := srcfile.SyntaxError(NewSpan(7, 9), "oops")
	line := err.FirstEnclosingLine()
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "cde fg", line.String())
	assert.Equal(t, "test:2:5-7 oops", err.Error())
}

func Test_SourceMap_01(t *testing.T) {
	var (
		srcfile = NewSourceFile("test", []byte("hello world"))
		srcmap  = NewSourceMap[string](srcfile)
	)
	//
	srcmap.Put("world", NewSpan(6, 11))
	//
	assert.True(t, srcmap.Has("world"))
	assert.False(t, srcmap.Has("hello"))
	span := srcmap.SyntaxError("world", "x").Span()
	assert.Equal(t, 5, span.Length())
	assert.Panics(t, func() { srcmap.Put("world", NewSpan(0, 1)) })
	assert.Panics(t, func() { srcmap.Get("hello") })
}

func Test_ReadFiles_01(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadFiles(filepath.Join(dir, "a"), filepath.Join(dir, "b"))
	// Both failures are reported
	assert.Len(t, multierr.Errors(err), 2)
}
