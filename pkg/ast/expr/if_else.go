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
package expr

import "github.com/consensys/go-flatten/pkg/util/field"

// IfElse represents a conditional expression which evaluates to Then when its
// condition holds, and Else otherwise.
type IfElse[F field.Element[F]] struct {
	Condition Condition[F]
	Then      Expr[F]
	Else      Expr[F]
}

// NewIfElse constructs a conditional expression.
func NewIfElse[F field.Element[F]](cond Condition[F], then Expr[F], els Expr[F]) Expr[F] {
	return &IfElse[F]{cond, then, els}
}

// Children implementation for the Expr interface.  The operands of the
// condition come first.
func (p *IfElse[F]) Children() []Expr[F] {
	return append(p.Condition.Children(), p.Then, p.Else)
}

// Equals implementation for the Expr interface.
func (p *IfElse[F]) Equals(e Expr[F]) bool {
	if e, ok := e.(*IfElse[F]); ok {
		return p.Condition.Equals(e.Condition) && p.Then.Equals(e.Then) && p.Else.Equals(e.Else)
	}
	//
	return false
}

func (p *IfElse[F]) String() string {
	return String[F](p)
}
