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
package flatten

import (
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/pkg/errors"
)

// Flatten an expression into quadratic safe form, emitting definitions for
// auxiliary symbols as necessary.  Expressions which are already quadratic safe
// are returned as is.
func (p *Flattener[F]) flattenExpr(e expr.Expr[F]) (expr.Expr[F], error) {
	if expr.IsFlattened(e) {
		return e, nil
	}
	//
	switch e := e.(type) {
	case *expr.Add[F]:
		return p.flattenBinary(e.Left, e.Right, expr.NewAdd[F])
	case *expr.Sub[F]:
		return p.flattenBinary(e.Left, e.Right, expr.NewSub[F])
	case *expr.Mul[F]:
		return p.flattenBinary(e.Left, e.Right, expr.NewMul[F])
	case *expr.Div[F]:
		return p.flattenBinary(e.Left, e.Right, expr.NewDiv[F])
	case *expr.Pow[F]:
		return p.flattenPow(e)
	case *expr.IfElse[F]:
		return p.flattenIfElse(e)
	default:
		// constants and variables are always flat
		panic("unreachable")
	}
}

func (p *Flattener[F]) flattenBinary(lhs expr.Expr[F], rhs expr.Expr[F],
	constructor func(expr.Expr[F], expr.Expr[F]) expr.Expr[F]) (expr.Expr[F], error) {
	// Left-hand side first
	lhs, err := p.flattenExpr(lhs)
	if err != nil {
		return nil, err
	}
	//
	rhs, err = p.flattenExpr(rhs)
	if err != nil {
		return nil, err
	}
	//
	return constructor(p.linearise(lhs), p.linearise(rhs)), nil
}

// Ensure a flattened expression is linear by materialising it into an
// auxiliary symbol when it is not.
func (p *Flattener[F]) linearise(e expr.Expr[F]) expr.Expr[F] {
	if expr.IsLinear(e) {
		return e
	}
	//
	return p.define(e)
}

// MaxPowExponent is the largest exponent permitted in a power.  A power with
// exponent k is expanded into k-2 auxiliary definitions.
const MaxPowExponent = 1 << 16

// Flatten a power with constant exponent k > 1 into a chain of k-1
// multiplications.  For example, x^3 becomes sym_0 = x * x followed by
// sym_0 * x.
func (p *Flattener[F]) flattenPow(e *expr.Pow[F]) (expr.Expr[F], error) {
	exponent, ok := e.Exponent.(*expr.Const[F])
	//
	if !ok || exponent.Value.Cmp64(1) <= 0 {
		return nil, errors.Wrapf(ErrPowExponent, "%s", e)
	} else if exponent.Value.Cmp64(MaxPowExponent) > 0 {
		return nil, errors.Wrapf(ErrPowExponent, "%s (exponent exceeds %d)", e, MaxPowExponent)
	}
	//
	switch e.Base.(type) {
	case *expr.Const[F], *expr.VarAccess[F]:
	default:
		return nil, errors.Wrapf(ErrPowBase, "%s", e)
	}
	//
	var (
		k      = exponent.Value.Uint64()
		factor = e.Base
	)
	// Materialise base^(i+1) for i in 1..k-2
	for i := uint64(1); i+1 < k; i++ {
		factor = p.define(expr.NewMul(factor, copyAtom(e.Base)))
	}
	//
	return expr.NewMul(factor, copyAtom(e.Base)), nil
}

// Flatten a conditional expression c ? a : b by arithmetising the condition
// into a selector t (which is either 0 or 1), and then flattening t*a + (1-t)*b.
func (p *Flattener[F]) flattenIfElse(e *expr.IfElse[F]) (expr.Expr[F], error) {
	condTrue, err := p.flattenCondition(e.Condition)
	if err != nil {
		return nil, err
	}
	//
	condFalse := p.define(expr.NewSub(expr.Number[F](1), condTrue))
	//
	return p.flattenExpr(expr.NewAdd(
		expr.NewMul(copyAtom(condTrue), e.Then),
		expr.NewMul(condFalse, e.Else)))
}

// Construct a fresh copy of a constant or variable access.
func copyAtom[F field.Element[F]](e expr.Expr[F]) expr.Expr[F] {
	switch e := e.(type) {
	case *expr.Const[F]:
		return expr.NewConst(e.Value)
	case *expr.VarAccess[F]:
		return expr.NewVarAccess[F](e.Name)
	default:
		panic("unreachable")
	}
}
