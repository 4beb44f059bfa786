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
	"strings"

	"github.com/consensys/go-flatten/pkg/util/collection/set"
	"github.com/consensys/go-flatten/pkg/util/collection/stack"
	"github.com/consensys/go-flatten/pkg/util/field"
)

// Expr represents an arbitrary arithmetic expression over a prime field F.
// Every node exclusively owns its children, hence expressions form trees.
type Expr[F field.Element[F]] interface {
	// Children returns the immediate subexpressions of this expression,
	// including the operands of any condition it contains.
	Children() []Expr[F]
	// Check whether two expressions are structurally equivalent
	Equals(e Expr[F]) bool
	// String returns a string representation of this expression.
	String() string
}

// Condition represents a boolean predicate over expressions, as used to
// select between the branches of an IfElse.
type Condition[F field.Element[F]] interface {
	// Children returns the operands of this condition.
	Children() []Expr[F]
	// Check whether two conditions are structurally equivalent
	Equals(c Condition[F]) bool
	// String returns a string representation of this condition.
	String() string
}

// EqualsAll determines whether all of the expressions on the left-hand side
// match those on the right-hand side.  The number of expressions on both sides
// must also match.
func EqualsAll[F field.Element[F]](lhs []Expr[F], rhs []Expr[F]) bool {
	if len(lhs) == len(rhs) {
		for i := range len(lhs) {
			if !lhs[i].Equals(rhs[i]) {
				return false
			}
		}
		//
		return true
	}
	//
	return false
}

// IsLinear determines whether a given expression is a linear combination.
// That is a constant, a variable, the sum or difference of two linear
// combinations, the product of a constant with a constant or variable, or the
// quotient of a constant or variable by a constant.
func IsLinear[F field.Element[F]](e Expr[F]) bool {
	switch e := e.(type) {
	case *Const[F], *VarAccess[F]:
		return true
	case *Add[F]:
		return IsLinear(e.Left) && IsLinear(e.Right)
	case *Sub[F]:
		return IsLinear(e.Left) && IsLinear(e.Right)
	case *Mul[F]:
		return (isConstant(e.Left) && isAtomic(e.Right)) || (isVariable(e.Left) && isConstant(e.Right))
	case *Div[F]:
		return isAtomic(e.Left) && isConstant(e.Right)
	default:
		return false
	}
}

// IsFlattened determines whether a given expression is "quadratic safe".  That
// is either atomic, or a single arithmetic operation whose two operands are
// linear.
func IsFlattened[F field.Element[F]](e Expr[F]) bool {
	switch e := e.(type) {
	case *Const[F], *VarAccess[F]:
		return true
	case *Add[F]:
		return IsLinear(e.Left) && IsLinear(e.Right)
	case *Sub[F]:
		return IsLinear(e.Left) && IsLinear(e.Right)
	case *Mul[F]:
		return IsLinear(e.Left) && IsLinear(e.Right)
	case *Div[F]:
		return IsLinear(e.Left) && IsLinear(e.Right)
	default:
		return false
	}
}

// Resolve a given name through a substitution map.  Substitutions chain, so
// resolution continues until a name without an entry is reached.
func Resolve(name string, substitution map[string]string) string {
	for {
		next, ok := substitution[name]
		//
		if !ok {
			return name
		}
		//
		name = next
	}
}

// Substitute rewrites every variable read within an expression through the
// given substitution map (see Resolve).  The original expression is left
// untouched.
func Substitute[F field.Element[F]](e Expr[F], substitution map[string]string) Expr[F] {
	switch e := e.(type) {
	case *Const[F]:
		return e
	case *VarAccess[F]:
		return &VarAccess[F]{Resolve(e.Name, substitution)}
	case *Add[F]:
		return &Add[F]{Substitute(e.Left, substitution), Substitute(e.Right, substitution)}
	case *Sub[F]:
		return &Sub[F]{Substitute(e.Left, substitution), Substitute(e.Right, substitution)}
	case *Mul[F]:
		return &Mul[F]{Substitute(e.Left, substitution), Substitute(e.Right, substitution)}
	case *Div[F]:
		return &Div[F]{Substitute(e.Left, substitution), Substitute(e.Right, substitution)}
	case *Pow[F]:
		return &Pow[F]{Substitute(e.Base, substitution), Substitute(e.Exponent, substitution)}
	case *IfElse[F]:
		return &IfElse[F]{
			SubstituteCondition(e.Condition, substitution),
			Substitute(e.Then, substitution),
			Substitute(e.Else, substitution),
		}
	default:
		panic("unreachable")
	}
}

// SubstituteCondition rewrites every variable read within a condition through
// the given substitution map.
func SubstituteCondition[F field.Element[F]](c Condition[F], substitution map[string]string) Condition[F] {
	switch c := c.(type) {
	case *Cmp[F]:
		return &Cmp[F]{c.Operator, Substitute(c.Left, substitution), Substitute(c.Right, substitution)}
	default:
		panic("unreachable")
	}
}

// Uses determines the (unique) set of variables read by any expression in the
// given set of expressions.
func Uses[F field.Element[F]](exprs ...Expr[F]) *set.SortedSet[string] {
	var (
		reads    = set.NewSortedSet[string]()
		worklist = stack.NewStack[Expr[F]]()
	)
	//
	worklist.PushReversed(exprs)
	//
	for !worklist.IsEmpty() {
		e := worklist.Pop()
		//
		if v, ok := e.(*VarAccess[F]); ok {
			reads.Insert(v.Name)
		}
		//
		worklist.PushReversed(e.Children())
	}
	//
	return reads
}

// Depth returns the height of a given expression tree, where atomic
// expressions have depth one.
func Depth[F field.Element[F]](e Expr[F]) uint {
	type entry struct {
		expr  Expr[F]
		depth uint
	}
	//
	var (
		worklist = stack.NewStack[entry]()
		depth    uint
	)
	//
	worklist.Push(entry{e, 1})
	//
	for !worklist.IsEmpty() {
		next := worklist.Pop()
		depth = max(depth, next.depth)
		//
		for _, child := range next.expr.Children() {
			worklist.Push(entry{child, next.depth + 1})
		}
	}
	//
	return depth
}

// String provides a generic facility for converting an expression into a
// suitable string.
func String[F field.Element[F]](e Expr[F]) string {
	var (
		exprs    []Expr[F]
		operator string
		builder  strings.Builder
	)
	//
	switch e := e.(type) {
	case *Const[F]:
		return stringOfConstant(e.Value)
	case *VarAccess[F]:
		return e.Name
	case *Add[F]:
		exprs, operator = e.Children(), "+"
	case *Sub[F]:
		exprs, operator = e.Children(), "-"
	case *Mul[F]:
		exprs, operator = e.Children(), "*"
	case *Div[F]:
		exprs, operator = e.Children(), "/"
	case *Pow[F]:
		exprs, operator = e.Children(), "**"
	case *IfElse[F]:
		return "if " + e.Condition.String() + " then " + String(e.Then) + " else " + String(e.Else) + " fi"
	default:
		panic("unreachable")
	}
	//
	for i, e := range exprs {
		if i != 0 {
			builder.WriteString(" ")
			builder.WriteString(operator)
			builder.WriteString(" ")
		}
		//
		builder.WriteString(stringOfOperand(e))
	}
	//
	return builder.String()
}

// Negative constants are shown as such, rather than as large field elements,
// when they are reasonably small.
func stringOfConstant[F field.Element[F]](val F) string {
	const bound = 1 << 16
	//
	if neg := field.Neg(val); val.Cmp64(bound) > 0 && neg.Cmp64(bound) <= 0 {
		return "-" + neg.String()
	}
	//
	return val.String()
}

func stringOfOperand[F field.Element[F]](e Expr[F]) string {
	if needsBraces(e) {
		return "(" + String(e) + ")"
	}
	//
	return String(e)
}

func needsBraces[F field.Element[F]](e Expr[F]) bool {
	switch e.(type) {
	case *Const[F]:
		return false
	case *VarAccess[F]:
		return false
	default:
		return true
	}
}

func isAtomic[F field.Element[F]](e Expr[F]) bool {
	return isConstant(e) || isVariable(e)
}

func isConstant[F field.Element[F]](e Expr[F]) bool {
	_, ok := e.(*Const[F])
	return ok
}

func isVariable[F field.Element[F]](e Expr[F]) bool {
	_, ok := e.(*VarAccess[F])
	return ok
}
