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
package sexp

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/consensys/go-flatten/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSexp_0(t *testing.T) {
	checkOk(t, nil, "")
}

func TestSexp_1(t *testing.T) {
	checkOk(t, &List{nil}, "()")
}

func TestSexp_2(t *testing.T) {
	checkOk(t, &List{[]SExp{&List{nil}}}, "(())")
}

func TestSexp_3(t *testing.T) {
	checkOk(t, &Symbol{"symbol"}, "symbol")
}

func TestSexp_4(t *testing.T) {
	checkOk(t, &Symbol{"-12345"}, "  -12345 ")
}

func TestSexp_5(t *testing.T) {
	checkOk(t, &List{[]SExp{&Symbol{"symbol123"}}}, "(symbol123)")
}

func TestSexp_6(t *testing.T) {
	checkOk(t, &List{[]SExp{&Symbol{"+"}, &Symbol{"1"}, &List{[]SExp{&Symbol{"*"}, &Symbol{"x"}, &Symbol{"y"}}}}},
		"(+ 1 ; comment\n (* x y))")
}

func TestSexp_7(t *testing.T) {
	checkOk(t, &List{[]SExp{&Symbol{"a"}, &Symbol{"b"}}}, "(a\tb)")
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestSexp_Err1(t *testing.T) {
	checkErr(t, ")", "unexpected end-of-list")
}

func TestSexp_Err2(t *testing.T) {
	checkErr(t, "())", "unexpected remainder")
}

func TestSexp_Err3(t *testing.T) {
	checkErr(t, "(another string", "unexpected end-of-file")
}

func TestSexp_Err4(t *testing.T) {
	checkErr(t, "a b", "unexpected remainder")
}

// ============================================================================
// ParseAll
// ============================================================================

func TestSexp_ParseAll(t *testing.T) {
	file := source.NewSourceFile("test.lisp", []byte("(a)\n; comment\nb (c d)"))
	terms, srcmap, err := ParseAll(file)
	//
	require.Nil(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, "(c d)", terms[2].String())
	//
	span := srcmap.Get(terms[1])
	assert.Equal(t, 14, span.Start())
	assert.Equal(t, 15, span.End())
	//
	line := file.FindFirstEnclosingLine(srcmap.Get(terms[2]))
	assert.Equal(t, 3, line.Number())
	assert.Equal(t, "b (c d)", line.String())
}

// ============================================================================
// Translator
// ============================================================================

func TestTranslator_01(t *testing.T) {
	checkTranslate(t, "(+ 1 (* 2 3) 4)", 11)
}

func TestTranslator_02(t *testing.T) {
	checkTranslate(t, "(* (+ 1 1) (+ 2 2))", 8)
}

func TestTranslator_Err1(t *testing.T) {
	checkTranslateErr(t, "(+ 1 x)", "unknown symbol \"x\"")
}

func TestTranslator_Err2(t *testing.T) {
	checkTranslateErr(t, "(- 1 2)", "unknown list \"-\"")
}

func TestTranslator_Err3(t *testing.T) {
	checkTranslateErr(t, "((+) 1 2)", "invalid list")
}

func TestTranslator_Err4(t *testing.T) {
	checkTranslateErr(t, "(*)", "empty product")
}

// ============================================================================
// Helpers
// ============================================================================

func checkOk(t *testing.T, expected SExp, input string) {
	actual, _, err := Parse(source.NewSourceFile("test.lisp", []byte(input)))
	//
	require.Nil(t, err)
	assert.Equal(t, expected, actual)
}

func checkErr(t *testing.T, input string, msg string) {
	_, _, err := Parse(source.NewSourceFile("test.lisp", []byte(input)))
	//
	require.NotNil(t, err, "input should not have parsed!")
	assert.Equal(t, msg, err.Message())
}

func newArithmeticTranslator(srcmap *source.Map[SExp]) *Translator[int] {
	translator := NewTranslator[int](srcmap)
	//
	translator.AddSymbolRule(func(s string) (int, bool, error) {
		n, err := strconv.Atoi(s)
		return n, err == nil, nil
	})
	translator.AddRecursiveRule("+", func(_ string, args []int) (int, error) {
		sum := 0
		for _, arg := range args {
			sum += arg
		}
		//
		return sum, nil
	})
	translator.AddRecursiveRule("*", func(_ string, args []int) (int, error) {
		if len(args) == 0 {
			return 0, fmt.Errorf("empty product")
		}
		//
		product := 1
		for _, arg := range args {
			product *= arg
		}
		//
		return product, nil
	})
	//
	return translator
}

func checkTranslate(t *testing.T, input string, expected int) {
	term, srcmap, err := Parse(source.NewSourceFile("test.lisp", []byte(input)))
	require.Nil(t, err)
	//
	actual, errs := newArithmeticTranslator(srcmap).Translate(term)
	require.Empty(t, errs)
	assert.Equal(t, expected, actual)
}

func checkTranslateErr(t *testing.T, input string, msg string) {
	term, srcmap, err := Parse(source.NewSourceFile("test.lisp", []byte(input)))
	require.Nil(t, err)
	//
	_, errs := newArithmeticTranslator(srcmap).Translate(term)
	require.Len(t, errs, 1)
	assert.Equal(t, msg, errs[0].Message())
}
