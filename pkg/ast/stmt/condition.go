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

// Condition represents an equality constraint between two expressions.  This
// is not a branch: a program whose constraints do not hold has no valid
// execution.
type Condition[F field.Element[F]] struct {
	Left  expr.Expr[F]
	Right expr.Expr[F]
}

// NewCondition constructs an equality constraint.
func NewCondition[F field.Element[F]](lhs expr.Expr[F], rhs expr.Expr[F]) Stmt[F] {
	return &Condition[F]{lhs, rhs}
}

// Uses implementation for Stmt interface.
func (p *Condition[F]) Uses() *set.SortedSet[string] {
	return expr.Uses(p.Left, p.Right)
}

// Definitions implementation for Stmt interface.
func (p *Condition[F]) Definitions() []string {
	return nil
}

// Equals implementation for Stmt interface.
func (p *Condition[F]) Equals(s Stmt[F]) bool {
	if s, ok := s.(*Condition[F]); ok {
		return p.Left.Equals(s.Left) && p.Right.Equals(s.Right)
	}
	//
	return false
}

func (p *Condition[F]) String() string {
	return p.Left.String() + " == " + p.Right.String()
}
