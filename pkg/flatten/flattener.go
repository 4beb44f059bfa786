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
	"slices"

	"github.com/consensys/go-flatten/pkg/ast"
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Flattener is responsible for flattening programs into "quadratic safe" form.
// In this form, every definition is either a linear combination, or a single
// arithmetic operation over two linear combinations.  Likewise, every return
// has the same form, and every equality constraint has a linear combination on
// (at least) one side.  Nested nonlinear expressions are materialised into
// auxiliary variables ("sym_0", "sym_1", etc) as necessary.
//
// A Flattener holds mutable state whilst flattening, hence must not be shared
// between goroutines.  Instead, use one Flattener per goroutine.
type Flattener[F field.Element[F]] struct {
	// Names defined so far, and substitutions required to read them.
	renamer renamer
	// Index of next auxiliary symbol
	index uint
	// Statements emitted so far
	statements []stmt.Stmt[F]
}

// New constructs a new flattener.
func New[F field.Element[F]]() *Flattener[F] {
	return &Flattener[F]{renamer: newRenamer()}
}

// Program flattens a given program using a fresh flattener.
func Program[F field.Element[F]](program ast.Program[F]) (ast.Program[F], error) {
	return New[F]().Flatten(program)
}

// Flatten a given program, producing an equivalent program in quadratic safe
// form.  The original program is not modified.  An error is returned if the
// program contains a construct which cannot be flattened, in which case no
// part of the flattened program is returned.  Flattening proceeds recursively
// over expressions, hence uses stack space proportional to the depth of the
// deepest expression.  Powers are expanded into repeated multiplication, hence
// the flattened program grows linearly with each exponent (which is bounded by
// MaxPowExponent).  Programs which read or write a reserved name (see
// ast.IsReserved) are rejected.
func (p *Flattener[F]) Flatten(program ast.Program[F]) (ast.Program[F], error) {
	p.reset()
	//
	if err := checkReserved(program); err != nil {
		return ast.Program[F]{}, errors.Wrapf(err, "flattening %s", program.Name)
	}
	//
	for _, s := range program.Statements {
		if err := p.flattenStatement(s); err != nil {
			p.reset()
			return ast.Program[F]{}, errors.Wrapf(err, "flattening %s", program.Name)
		}
	}
	// Trace final state
	log.Debugf("flattened %s (%d statements, %d flattened, %d symbols)", program.Name, len(program.Statements),
		len(p.statements), p.index)
	log.Debugf("variables %s", p.renamer.used)
	log.Debugf("substitution %s", &p.renamer)
	//
	return ast.NewProgram(program.Name, slices.Clone(program.Arguments), p.statements...), nil
}

// Symbols returns the number of auxiliary symbols introduced by the most recent
// flattening.
func (p *Flattener[F]) Symbols() uint {
	return p.index
}

func (p *Flattener[F]) reset() {
	p.renamer = newRenamer()
	p.index = 0
	p.statements = nil
}

func (p *Flattener[F]) flattenStatement(s stmt.Stmt[F]) error {
	var substitution = p.renamer.substitution
	//
	switch s := s.(type) {
	case *stmt.Return[F]:
		e, err := p.flattenExpr(expr.Substitute(s.Expr, substitution))
		if err != nil {
			return err
		}
		//
		p.renamer.reserve(ast.OUTPUT)
		p.emit(stmt.NewReturn(e))
	case *stmt.Definition[F]:
		e, err := p.flattenExpr(expr.Substitute(s.Expr, substitution))
		if err != nil {
			return err
		}
		//
		p.emit(stmt.NewDefinition(p.renamer.Use(s.Name), e))
	case *stmt.Condition[F]:
		var (
			lhs = expr.Substitute(s.Left, substitution)
			rhs = expr.Substitute(s.Right, substitution)
			err error
		)
		// The linear side is always placed on the left.
		switch {
		case expr.IsLinear(lhs):
			rhs, err = p.flattenExpr(rhs)
		case expr.IsLinear(rhs):
			lhs, rhs = rhs, lhs
			rhs, err = p.flattenExpr(rhs)
		default:
			return errors.Wrapf(ErrNonLinearCondition, "%s", s)
		}
		//
		if err != nil {
			return err
		}
		//
		p.emit(stmt.NewCondition(lhs, rhs))
	default:
		panic("unreachable")
	}
	//
	return nil
}

// Define a fresh auxiliary symbol to hold the value of a given expression,
// returning an access to it.
func (p *Flattener[F]) define(e expr.Expr[F]) expr.Expr[F] {
	var name = fmt.Sprintf("%s%d", ast.AUXILIARY, p.index)
	//
	p.index++
	p.emit(stmt.NewDefinition(name, e))
	//
	return expr.NewVarAccess[F](name)
}

// Check a program neither reads nor writes a variable whose name is reserved
// for auxiliary variables.
func checkReserved[F field.Element[F]](program ast.Program[F]) error {
	for _, arg := range program.Arguments {
		if ast.IsReserved(arg) {
			return errors.Wrapf(ErrReservedName, "argument %s", arg)
		}
	}
	//
	for _, s := range program.Statements {
		names := slices.Concat(s.Uses().ToArray(), s.Definitions())
		//
		if i := slices.IndexFunc(names, ast.IsReserved); i >= 0 {
			return errors.Wrapf(ErrReservedName, "%s in %s", names[i], s)
		}
	}
	//
	return nil
}

func (p *Flattener[F]) emit(s stmt.Stmt[F]) {
	p.statements = append(p.statements, s)
}
