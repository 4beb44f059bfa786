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
	"fmt"

	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/pkg/errors"
)

// ComparisonBitWidth determines the number of bits used to decompose the
// difference of two values when arithmetising a comparison.  Comparisons are
// only correct when this difference lies in [-2^(n-1), 2^(n-1)).
const ComparisonBitWidth = 8

// Flatten a condition into an expression which evaluates to 1 when the
// condition holds, and 0 otherwise.  Only less-than is supported.  For lhs <
// rhs, this materialises the difference d = lhs - rhs, and decomposes it into
// ComparisonBitWidth bits d_b0, d_b1, ... each constrained to be boolean.
// Reading d as a two's complement integer, its sign bit determines whether
// lhs < rhs.
func (p *Flattener[F]) flattenCondition(c expr.Condition[F]) (expr.Expr[F], error) {
	cmp, ok := c.(*expr.Cmp[F])
	//
	if !ok || cmp.Operator != expr.LT {
		return nil, errors.Wrapf(ErrUnsupportedCondition, "%s", c)
	}
	//
	lhs, err := p.flattenExpr(cmp.Left)
	if err != nil {
		return nil, err
	}
	//
	rhs, err := p.flattenExpr(cmp.Right)
	if err != nil {
		return nil, err
	}
	// Always materialise both sides
	lhs = p.define(lhs)
	rhs = p.define(rhs)
	diff := p.define(expr.NewSub(lhs, rhs)).(*expr.VarAccess[F]).Name
	// Bit consistency
	for i := range ComparisonBitWidth {
		p.emit(stmt.NewDefinition(BitName(diff, i), expr.NewMul(bitAccess[F](diff, i), bitAccess[F](diff, i))))
	}
	// Reconstruct difference from bits, least significant innermost.
	sum := bitAccess[F](diff, 0)
	//
	for i := 1; i < ComparisonBitWidth-1; i++ {
		weight := expr.NewConst(field.TwoPowN[F](uint(i)))
		sum = expr.NewAdd(expr.NewMul(bitAccess[F](diff, i), weight), sum)
	}
	// Sign bit has negative weight
	msb := ComparisonBitWidth - 1
	weight := expr.NewConst(field.Neg(field.TwoPowN[F](uint(msb))))
	sum = expr.NewAdd(expr.NewMul(bitAccess[F](diff, msb), weight), sum)
	//
	p.emit(stmt.NewDefinition(diff, sum))
	//
	return bitAccess[F](diff, msb), nil
}

// BitName returns the name of the ith bit in the decomposition of a given
// variable.
func BitName(name string, i int) string {
	return fmt.Sprintf("%s_b%d", name, i)
}

func bitAccess[F field.Element[F]](name string, i int) expr.Expr[F] {
	return expr.NewVarAccess[F](BitName(name, i))
}
