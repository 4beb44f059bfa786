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

// Pow represents an expression raising a base to some power.  Only constant
// exponents can be flattened, though arbitrary exponents can be represented.
type Pow[F field.Element[F]] struct {
	Base     Expr[F]
	Exponent Expr[F]
}

// NewPow constructs an expression representing base raised to the power
// exponent.
func NewPow[F field.Element[F]](base Expr[F], exponent Expr[F]) Expr[F] {
	return &Pow[F]{base, exponent}
}

// Children implementation for the Expr interface.
func (p *Pow[F]) Children() []Expr[F] {
	return []Expr[F]{p.Base, p.Exponent}
}

// Equals implementation for the Expr interface.
func (p *Pow[F]) Equals(e Expr[F]) bool {
	if e, ok := e.(*Pow[F]); ok {
		return p.Base.Equals(e.Base) && p.Exponent.Equals(e.Exponent)
	}
	//
	return false
}

func (p *Pow[F]) String() string {
	return String[F](p)
}
