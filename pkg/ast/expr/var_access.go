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

// VarAccess represents a read of a named variable.
type VarAccess[F field.Element[F]] struct {
	Name string
}

// NewVarAccess constructs an expression representing a variable access.
func NewVarAccess[F field.Element[F]](name string) Expr[F] {
	return &VarAccess[F]{name}
}

// Children implementation for the Expr interface.
func (p *VarAccess[F]) Children() []Expr[F] {
	return nil
}

// Equals implementation for the Expr interface.
func (p *VarAccess[F]) Equals(e Expr[F]) bool {
	if e, ok := e.(*VarAccess[F]); ok {
		return p.Name == e.Name
	}
	//
	return false
}

func (p *VarAccess[F]) String() string {
	return p.Name
}
