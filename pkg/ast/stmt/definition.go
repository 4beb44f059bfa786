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

// Definition binds a named variable to the value of a given expression:
//
// x = e
//
// Definitions may shadow earlier definitions of the same name, in which case
// subsequent reads refer to the most recent definition.
type Definition[F field.Element[F]] struct {
	// Name of variable being defined
	Name string
	// Expression whose value is assigned
	Expr expr.Expr[F]
}

// NewDefinition constructs a definition of a given variable.
func NewDefinition[F field.Element[F]](name string, e expr.Expr[F]) Stmt[F] {
	return &Definition[F]{name, e}
}

// Uses implementation for Stmt interface.
func (p *Definition[F]) Uses() *set.SortedSet[string] {
	return expr.Uses(p.Expr)
}

// Definitions implementation for Stmt interface.
func (p *Definition[F]) Definitions() []string {
	return []string{p.Name}
}

// Equals implementation for Stmt interface.
func (p *Definition[F]) Equals(s Stmt[F]) bool {
	if s, ok := s.(*Definition[F]); ok {
		return p.Name == s.Name && p.Expr.Equals(s.Expr)
	}
	//
	return false
}

func (p *Definition[F]) String() string {
	return p.Name + " = " + p.Expr.String()
}
