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
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/consensys/go-flatten/pkg/ast"
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/eval"
	"github.com/consensys/go-flatten/pkg/flatten"
	"github.com/consensys/go-flatten/pkg/reader"
	"github.com/consensys/go-flatten/pkg/util"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/consensys/go-flatten/pkg/util/field/bls12_377"
	"github.com/consensys/go-flatten/pkg/util/field/bn254"
	"github.com/consensys/go-flatten/pkg/util/field/gf251"
	"github.com/xyproto/env/v2"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the source files (lisp) and the corresponding runs (accepts/rejects)
// are found.
const TestDir = "../../testdata"

// FIELD_REGEX is used to restrict which fields will be tested.  This is
// primarily useful for the CI pipeline where we want to test individual fields
// in separate runners.
var FIELD_REGEX = regexp.MustCompile(env.Str("FLATTEN_TEST_FIELD", ""))

// Run describes a single invocation of a program, along with its expected
// result (where the run is expected to succeed).
type Run struct {
	// Program being invoked.
	Program string `json:"program"`
	// Arguments, where negative values -x are represented as p-x.
	Args []int64 `json:"args"`
	// Expected result (ignored for rejected runs).
	Result int64 `json:"result"`
}

// Config provides a simple mechanism for searching for testfiles.
type Config struct {
	extension string
	expected  bool
}

// TESTFILE_EXTENSIONS identifies the possible file extensions used for
// different test inputs.
var TESTFILE_EXTENSIONS = []Config{
	// should all pass
	{"accepts", true},
	{"accepts.bz2", true},
	// should all fail
	{"rejects", false},
	{"rejects.bz2", false},
}

// CheckValid checks that every program in a given source file flattens into
// quadratic safe form, and that every run which we expect to be accepted
// produces the expected result both before and after flattening.  Likewise,
// runs which we expect to be rejected must fail both before and after
// flattening.  All fields provided are tested against.
func CheckValid(t *testing.T, test string, fields ...field.Config) {
	if len(fields) == 0 {
		panic("no field configurations")
	}
	//
	t.Parallel()
	//
	for _, f := range fields {
		if !FIELD_REGEX.MatchString(f.Name) {
			continue
		}
		//
		switch f {
		case field.GF_251:
			checkWithField[gf251.Element](t, test, f)
		case field.BN254:
			checkWithField[bn254.Element](t, test, f)
		case field.BLS12_377:
			checkWithField[bls12_377.Element](t, test, f)
		default:
			panic(fmt.Sprintf("unknown field configuration: %s", f.Name))
		}
	}
}

func checkWithField[F field.Element[F]](t *testing.T, test string, config field.Config) {
	var (
		filename  = fmt.Sprintf("%s/%s.lisp", TestDir, test)
		programs  = readPrograms[F](t, filename)
		flattened = make(map[string]ast.Program[F])
		nRuns     = 0
	)
	//
	for _, program := range programs {
		p, err := flatten.Program(program)
		//
		if err != nil {
			t.Fatalf("[%s] %s: %s", config.Name, filename, err)
		}
		//
		checkQuadraticSafe(t, config, p)
		flattened[program.Name] = p
	}
	//
	for _, cfg := range TESTFILE_EXTENSIONS {
		runsFilename := fmt.Sprintf("%s/%s.%s", TestDir, test, cfg.extension)
		runs := ReadRunsFile(t, runsFilename)
		//
		for i, run := range runs {
			if run == nil {
				continue
			}
			//
			id := runId{config.Name, runsFilename, i + 1}
			source := findProgram(t, id, programs, run.Program)
			//
			checkRun(t, id, source, flattened[run.Program], run, cfg.expected)
		}
		//
		nRuns += len(runs)
	}
	//
	if nRuns == 0 {
		panic(fmt.Sprintf("missing any runs for %s", test))
	}
}

func checkRun[F field.Element[F]](t *testing.T, id runId, source ast.Program[F], flattened ast.Program[F],
	run *Run, expected bool) {
	//
	var (
		args = elements[F](run.Args...)
		hint = eval.WithHint(eval.BitDecomposition[F](flatten.ComparisonBitWidth))
	)
	//
	sval, serr := eval.Run(source, args)
	fval, ferr := eval.Run(flattened, args, hint)
	//
	switch {
	case expected && serr != nil:
		t.Errorf("%s: source failed (%s)", id.String(), serr)
	case expected && ferr != nil:
		t.Errorf("%s: flattened failed (%s)\n%s", id.String(), ferr, flattened.String())
	case expected && sval.Cmp(elements[F](run.Result)[0]) != 0:
		t.Errorf("%s: source returned %s, expected %d", id.String(), sval, run.Result)
	case expected && fval.Cmp(sval) != 0:
		t.Errorf("%s: flattened returned %s, source returned %s\n%s", id.String(), fval, sval, flattened.String())
	case !expected && serr == nil:
		t.Errorf("%s: source should have failed (returned %s)", id.String(), sval)
	case !expected && ferr == nil:
		t.Errorf("%s: flattened should have failed (returned %s)", id.String(), fval)
	}
}

// Every statement of a flattened program must be quadratic safe.
func checkQuadraticSafe[F field.Element[F]](t *testing.T, config field.Config, program ast.Program[F]) {
	for _, s := range program.Statements {
		var ok bool
		//
		switch s := s.(type) {
		case *stmt.Condition[F]:
			ok = expr.IsLinear(s.Left) && expr.IsFlattened(s.Right)
		default:
			ok = expr.IsFlattened(stmt.Expressions(s)[0])
		}
		//
		if !ok {
			t.Errorf("[%s] %s: statement \"%s\" not quadratic safe", config.Name, program.Name, s)
		}
	}
}

func findProgram[F field.Element[F]](t *testing.T, id runId, programs []ast.Program[F], name string) ast.Program[F] {
	for _, program := range programs {
		if program.Name == name {
			return program
		}
	}
	//
	t.Fatalf("%s: unknown program \"%s\"", id.String(), name)
	//
	return ast.Program[F]{}
}

func readPrograms[F field.Element[F]](t *testing.T, filename string) []ast.Program[F] {
	programs, errs, err := reader.ReadFiles[F](filename)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	for _, err := range errs {
		t.Error(errorToString(err))
	}
	//
	if len(errs) > 0 {
		t.FailNow()
	}
	//
	return programs
}

// A run identifier uniquely identifies a specific run within a given test.
// This is used to provide debug information about a run failure.
type runId struct {
	// Identifies the prime field used
	field string
	// Identifies the file containing the run.
	filename string
	// Identifies the line number within the file.
	line int
}

func (p *runId) String() string {
	return fmt.Sprintf("[%s] %s:%d", p.field, p.filename, p.line)
}

// ReadRunsFile reads a file containing zero or more runs expressed as JSON,
// where each run is on a separate line.  Blank lines and comments (starting
// with ";;") are returned as nil.
func ReadRunsFile(t *testing.T, filename string) []*Run {
	lines, err := util.ReadInputFile(filename)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	runs := make([]*Run, len(lines))
	//
	for i, line := range lines {
		if line != "" && !strings.HasPrefix(line, ";;") {
			var run Run
			//
			if err := json.Unmarshal([]byte(line), &run); err != nil {
				t.Fatalf("%s:%d: %s", filename, i+1, err)
			}
			//
			runs[i] = &run
		}
	}
	//
	return runs
}

// Construct field elements from signed integers, such that -x is represented by
// p-x.
func elements[F field.Element[F]](vals ...int64) []F {
	var elems = make([]F, len(vals))
	//
	for i, v := range vals {
		if v < 0 {
			elems[i] = field.Neg(field.Uint64[F](uint64(-v)))
		} else {
			elems[i] = field.Uint64[F](uint64(v))
		}
	}
	//
	return elems
}
