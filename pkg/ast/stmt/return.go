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

// Return signals the value returned from the enclosing program.
type Return[F field.Element[F]] struct {
	Expr expr.Expr[F]
}

// NewReturn constructs a return statement for a given expression.
func NewReturn[F field.Element[F]](e expr.Expr[F]) Stmt[F] {
	return &Return[F]{e}
}

// Uses implementation for Stmt interface.
func (p *Return[F]) Uses() *set.SortedSet[string] {
	return expr.Uses(p.Expr)
}

// Definitions implementation for Stmt interface.
func (p *Return[F]) Definitions() []string {
	return nil
}

// Equals implementation for Stmt interface.
func (p *Return[F]) Equals(s Stmt[F]) bool {
	if s, ok := s.(*Return[F]); ok {
		return p.Expr.Equals(s.Expr)
	}
	//
	return false
}

func (p *Return[F]) String() string {
	return "return " + p.Expr.String()
}
