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

// Const represents a constant value within an expresion.
type Const[F field.Element[F]] struct {
	Value F
}

// NewConst constructs an expression representing a constant value.
func NewConst[F field.Element[F]](value F) Expr[F] {
	return &Const[F]{value}
}

// Number constructs an expression representing a small (unsigned) constant.
func Number[F field.Element[F]](value uint64) Expr[F] {
	return &Const[F]{field.Uint64[F](value)}
}

// Children implementation for the Expr interface.
func (p *Const[F]) Children() []Expr[F] {
	return nil
}

// Equals implementation for the Expr interface.
func (p *Const[F]) Equals(e Expr[F]) bool {
	if e, ok := e.(*Const[F]); ok {
		return p.Value.Cmp(e.Value) == 0
	}
	//
	return false
}

func (p *Const[F]) String() string {
	return String[F](p)
}
