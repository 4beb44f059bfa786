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
package stmt

import (
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/util/collection/set"
	"github.com/consensys/go-flatten/pkg/util/field"
)

// Stmt represents a single statement within a program.  Statements are either
// definitions of variables, equality constraints between expressions or the
// return of a value.
type Stmt[F field.Element[F]] interface {
	// Uses returns the set of variables used (i.e. read) by this statement.
	Uses() *set.SortedSet[string]
	// Definitions returns the set of variables defined (i.e. written) by this
	// statement.
	Definitions() []string
	// Check whether two statements are structurally equivalent
	Equals(s Stmt[F]) bool
	// Provide human readable form of statement
	String() string
}

// Expressions returns the expressions contained within a given statement, in
// the order they appear.
func Expressions[F field.Element[F]](s Stmt[F]) []expr.Expr[F] {
	switch s := s.(type) {
	case *Return[F]:
		return []expr.Expr[F]{s.Expr}
	case *Definition[F]:
		return []expr.Expr[F]{s.Expr}
	case *Condition[F]:
		return []expr.Expr[F]{s.Left, s.Right}
	default:
		panic("unreachable")
	}
}
