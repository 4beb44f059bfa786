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

import (
	"fmt"

	"github.com/consensys/go-flatten/pkg/util/field"
)

const (
	// EQ indicates an equality condition
	EQ CmpOp = 0
	// NEQ indicates a non-equality condition
	NEQ CmpOp = 1
	// LT indicates a less-than condition
	LT CmpOp = 2
	// GT indicates a greater-than condition
	GT CmpOp = 3
	// LTEQ indicates a less-than-or-equals condition
	LTEQ CmpOp = 4
	// GTEQ indicates a greater-than-or-equals condition
	GTEQ CmpOp = 5
)

// CmpOp represents the set of possible operators for a comparison condition.
type CmpOp uint8

func (op CmpOp) String() string {
	switch op {
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case LT:
		return "<"
	case LTEQ:
		return "<="
	case GT:
		return ">"
	case GTEQ:
		return ">="
	default:
		panic("unreachable")
	}
}

// Cmp represents a comparison, such as "==", ">=", etc.
type Cmp[F field.Element[F]] struct {
	// Operator indicates the condition
	Operator CmpOp
	// Left-hand side
	Left Expr[F]
	// Right-hand side
	Right Expr[F]
}

// NewLt constructs a condition which holds when lhs < rhs.
func NewLt[F field.Element[F]](lhs Expr[F], rhs Expr[F]) Condition[F] {
	return &Cmp[F]{LT, lhs, rhs}
}

// NewCmp constructs a comparison with an arbitrary operator.
func NewCmp[F field.Element[F]](op CmpOp, lhs Expr[F], rhs Expr[F]) Condition[F] {
	return &Cmp[F]{op, lhs, rhs}
}

// Children implementation for the Condition interface.
func (p *Cmp[F]) Children() []Expr[F] {
	return []Expr[F]{p.Left, p.Right}
}

// Equals implementation for the Condition interface.
func (p *Cmp[F]) Equals(c Condition[F]) bool {
	if c, ok := c.(*Cmp[F]); ok {
		return p.Operator == c.Operator && p.Left.Equals(c.Left) && p.Right.Equals(c.Right)
	}
	//
	return false
}

func (p *Cmp[F]) String() string {
	return fmt.Sprintf("%s %s %s", stringOfOperand(p.Left), p.Operator, stringOfOperand(p.Right))
}
