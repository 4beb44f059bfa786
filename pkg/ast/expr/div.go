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

// Div represents an expression which divides one term by another.  Division is by
// multiplicative inverse, hence dividing by zero is undefined.
type Div[F field.Element[F]] struct {
	Left  Expr[F]
	Right Expr[F]
}

// NewDiv constructs an expression representing the quotient of two values.
func NewDiv[F field.Element[F]](lhs Expr[F], rhs Expr[F]) Expr[F] {
	return &Div[F]{lhs, rhs}
}

// Children implementation for the Expr interface.
func (p *Div[F]) Children() []Expr[F] {
	return []Expr[F]{p.Left, p.Right}
}

// Equals implementation for the Expr interface.
func (p *Div[F]) Equals(e Expr[F]) bool {
	if e, ok := e.(*Div[F]); ok {
		return p.Left.Equals(e.Left) && p.Right.Equals(e.Right)
	}
	//
	return false
}

func (p *Div[F]) String() string {
	return String[F](p)
}
