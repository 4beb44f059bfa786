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
package ast

import (
	"regexp"
	"slices"
	"strings"

	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/util/field"
)

// OUTPUT is the reserved name identifying the value returned by a program.
const OUTPUT = "~out"

// AUXILIARY is the prefix of the auxiliary variables introduced by flattening,
// which are numbered from zero (e.g. sym_0, sym_1, etc).
const AUXILIARY = "sym_"

var reserved = regexp.MustCompile("^" + AUXILIARY + "[0-9]+(_b[0-9]+)?$")

// IsReserved checks whether a given variable name can clash with an auxiliary
// variable introduced by flattening, or with one of its bits (e.g. sym_0_b7).
func IsReserved(name string) bool {
	return reserved.MatchString(name)
}

// Program represents a single function comprising a name, a sequence of named
// arguments and a sequence of statements.  Statements are executed in order,
// and a program is expected to end with a return.
type Program[F field.Element[F]] struct {
	Name       string
	Arguments  []string
	Statements []stmt.Stmt[F]
}

// NewProgram constructs a new program.
func NewProgram[F field.Element[F]](name string, args []string, stmts ...stmt.Stmt[F]) Program[F] {
	return Program[F]{name, args, stmts}
}

// Definitions returns the names defined by this program, in order of
// definition and including duplicates.
func (p *Program[F]) Definitions() []string {
	var names []string
	//
	for _, s := range p.Statements {
		names = append(names, s.Definitions()...)
	}
	//
	return names
}

// Equals determines whether two programs are structurally identical.
func (p *Program[F]) Equals(other Program[F]) bool {
	if p.Name != other.Name || len(p.Statements) != len(other.Statements) {
		return false
	} else if !slices.Equal(p.Arguments, other.Arguments) {
		return false
	}
	//
	for i, s := range p.Statements {
		if !s.Equals(other.Statements[i]) {
			return false
		}
	}
	//
	return true
}

func (p *Program[F]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("def ")
	builder.WriteString(p.Name)
	builder.WriteString("(")
	builder.WriteString(strings.Join(p.Arguments, ", "))
	builder.WriteString("):\n")
	//
	for _, s := range p.Statements {
		builder.WriteString("\t")
		builder.WriteString(s.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
