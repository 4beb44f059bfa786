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

// Add represents an expression which adds two terms together.
type Add[F field.Element[F]] struct {
	Left  Expr[F]
	Right Expr[F]
}

// NewAdd constructs an expression representing the sum of two values.
func NewAdd[F field.Element[F]](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Add[F]{lhs, rhs}
}

// Children implementation for the Expr interface.
func (p *Add[F]) Children() []Expr[F] {
	return []Expr[F]{p.Left, p.Right}
}

// Equals implementation for the Expr interface.
func (p *Add[F]) Equals(e Expr[F]) bool {
	if e, ok := e.(*Add[F]); ok {
		return p.Left.Equals(e.Left) && p.Right.Equals(e.Right)
	}
	//
	return false
}

func (p *Add[F]) String() string {
	return String[F](p)
}
