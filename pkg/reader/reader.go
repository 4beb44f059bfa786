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
package reader

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/consensys/go-flatten/pkg/ast"
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/sexp"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/consensys/go-flatten/pkg/util/source"
)

// ReadFiles reads and parses a given set of source files.  An error is
// returned if any file cannot be read, whilst syntax errors are returned for
// all files which can be read but are malformed.
func ReadFiles[F field.Element[F]](filenames ...string) ([]ast.Program[F], []source.SyntaxError, error) {
	var (
		programs []ast.Program[F]
		errors   []source.SyntaxError
	)
	//
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, nil, err
	}
	//
	for i := range files {
		ps, errs := Read[F](&files[i])
		programs = append(programs, ps...)
		errors = append(errors, errs...)
	}
	//
	if len(errors) > 0 {
		return nil, errors, nil
	}
	//
	return programs, nil, nil
}

// Read parses the programs defined in a given source file.  Programs are
// written as S-Expressions, such as the following:
//
// (def main (a b)
//
//	(= x (* a b))
//	(== x (+ a 1))
//	(return (if (< a b) (^ x 3) 0)))
//
// Here, (= x e) defines x, (== l r) constrains l and r to be equal, and
// (return e) returns e.
func Read[F field.Element[F]](srcfile *source.File) ([]ast.Program[F], []source.SyntaxError) {
	var (
		programs []ast.Program[F]
		errors   []source.SyntaxError
	)
	//
	terms, srcmap, err := sexp.ParseAll(srcfile)
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	p := newReader[F](srcmap)
	//
	for _, term := range terms {
		program, errs := p.readProgram(term)
		//
		if len(errs) == 0 && slices.ContainsFunc(programs, func(q ast.Program[F]) bool { return q.Name == program.Name }) {
			errs = p.translator.SyntaxErrors(term, fmt.Sprintf("duplicate program \"%s\"", program.Name))
		}
		//
		programs = append(programs, program)
		errors = append(errors, errs...)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return programs, nil
}

type reader[F field.Element[F]] struct {
	translator *sexp.Translator[expr.Expr[F]]
}

func newReader[F field.Element[F]](srcmap *source.Map[sexp.SExp]) *reader[F] {
	p := &reader[F]{sexp.NewTranslator[expr.Expr[F]](srcmap)}
	//
	p.translator.AddSymbolRule(constantParserRule[F])
	p.translator.AddSymbolRule(varAccessParserRule[F])
	p.translator.AddRecursiveRule("+", binaryParserRule(expr.NewAdd[F]))
	p.translator.AddRecursiveRule("-", binaryParserRule(expr.NewSub[F]))
	p.translator.AddRecursiveRule("*", binaryParserRule(expr.NewMul[F]))
	p.translator.AddRecursiveRule("/", binaryParserRule(expr.NewDiv[F]))
	p.translator.AddRecursiveRule("^", powParserRule[F])
	p.translator.AddListRule("if", p.readIfElse)
	//
	return p
}

func (p *reader[F]) readProgram(term sexp.SExp) (ast.Program[F], []source.SyntaxError) {
	var (
		list     = term.AsList()
		stmts    []stmt.Stmt[F]
		errors   []source.SyntaxError
		empty    ast.Program[F]
		name     string
		args     []string
		argsList *sexp.List
	)
	//
	if list == nil || !list.MatchSymbols(3, "def") {
		return empty, p.translator.SyntaxErrors(term, "expected (def name (args) statements)")
	} else if name = identifier(list.Get(1)); name == "" {
		return empty, p.translator.SyntaxErrors(list.Get(1), "invalid program name")
	} else if argsList = list.Get(2).AsList(); argsList == nil {
		return empty, p.translator.SyntaxErrors(list.Get(2), "expected argument list")
	}
	// Arguments
	for _, arg := range argsList.Elements {
		if id := identifier(arg); id == "" {
			errors = append(errors, p.translator.SyntaxErrors(arg, "invalid argument name")...)
		} else if ast.IsReserved(id) {
			errors = append(errors, p.translator.SyntaxErrors(arg, reservedMessage(id))...)
		} else if slices.Contains(args, id) {
			errors = append(errors, p.translator.SyntaxErrors(arg, "duplicate argument")...)
		} else {
			args = append(args, id)
		}
	}
	// Statements
	for _, s := range list.Elements[3:] {
		st, errs := p.readStatement(s)
		stmts = append(stmts, st)
		errors = append(errors, errs...)
	}
	//
	if len(errors) > 0 {
		return empty, errors
	}
	//
	return ast.NewProgram(name, args, stmts...), nil
}

func (p *reader[F]) readStatement(term sexp.SExp) (stmt.Stmt[F], []source.SyntaxError) {
	var list = term.AsList()
	//
	switch {
	case list == nil || list.Len() == 0 || list.Get(0).AsSymbol() == nil:
		return nil, p.translator.SyntaxErrors(term, "invalid statement")
	case list.MatchSymbols(1, "="):
		if list.Len() != 3 {
			return nil, p.translator.SyntaxErrors(term, "expected (= name expression)")
		}
		//
		name := identifier(list.Get(1))
		if name == "" {
			return nil, p.translator.SyntaxErrors(list.Get(1), "invalid variable name")
		} else if ast.IsReserved(name) {
			return nil, p.translator.SyntaxErrors(list.Get(1), reservedMessage(name))
		}
		//
		e, errs := p.translator.Translate(list.Get(2))
		//
		return stmt.NewDefinition(name, e), errs
	case list.MatchSymbols(1, "=="):
		if list.Len() != 3 {
			return nil, p.translator.SyntaxErrors(term, "expected (== expression expression)")
		}
		//
		lhs, lerrs := p.translator.Translate(list.Get(1))
		rhs, rerrs := p.translator.Translate(list.Get(2))
		//
		return stmt.NewCondition(lhs, rhs), append(lerrs, rerrs...)
	case list.MatchSymbols(1, "return"):
		if list.Len() != 2 {
			return nil, p.translator.SyntaxErrors(term, "expected (return expression)")
		}
		//
		e, errs := p.translator.Translate(list.Get(1))
		//
		return stmt.NewReturn(e), errs
	default:
		return nil, p.translator.SyntaxErrors(list.Get(0), "unknown statement")
	}
}

func (p *reader[F]) readIfElse(list *sexp.List) (expr.Expr[F], []source.SyntaxError) {
	if list.Len() != 4 {
		return nil, p.translator.SyntaxErrors(list, "expected (if condition expression expression)")
	}
	//
	cond, cerrs := p.readCondition(list.Get(1))
	then, terrs := p.translator.Translate(list.Get(2))
	els, eerrs := p.translator.Translate(list.Get(3))
	//
	if errs := slices.Concat(cerrs, terrs, eerrs); len(errs) > 0 {
		return nil, errs
	}
	//
	return expr.NewIfElse(cond, then, els), nil
}

var comparators = map[string]expr.CmpOp{
	"==": expr.EQ, "!=": expr.NEQ, "<": expr.LT, "<=": expr.LTEQ, ">": expr.GT, ">=": expr.GTEQ,
}

func (p *reader[F]) readCondition(term sexp.SExp) (expr.Condition[F], []source.SyntaxError) {
	var list = term.AsList()
	//
	if list == nil || list.Len() != 3 || list.Get(0).AsSymbol() == nil {
		return nil, p.translator.SyntaxErrors(term, "expected (op expression expression)")
	}
	//
	op, ok := comparators[list.Get(0).AsSymbol().Value]
	if !ok {
		return nil, p.translator.SyntaxErrors(list.Get(0), "unknown comparison")
	}
	//
	lhs, lerrs := p.translator.Translate(list.Get(1))
	rhs, rerrs := p.translator.Translate(list.Get(2))
	//
	if errs := append(lerrs, rerrs...); len(errs) > 0 {
		return nil, errs
	}
	//
	return expr.NewCmp(op, lhs, rhs), nil
}

// ============================================================================
// Rules
// ============================================================================

func constantParserRule[F field.Element[F]](symbol string) (expr.Expr[F], bool, error) {
	if symbol == "" || (!unicode.IsDigit(rune(symbol[0])) && symbol[0] != '-') {
		return nil, false, nil
	}
	//
	val, err := field.Parse[F](symbol)
	//
	return expr.NewConst(val), true, err
}

func varAccessParserRule[F field.Element[F]](symbol string) (expr.Expr[F], bool, error) {
	if !isIdentifier(symbol) {
		return nil, false, nil
	} else if ast.IsReserved(symbol) {
		return nil, true, fmt.Errorf("%s", reservedMessage(symbol))
	}
	//
	return expr.NewVarAccess[F](symbol), true, nil
}

// Binary operators are left associative when given more than two arguments,
// such that (- a b c) is read as (a - b) - c.
func binaryParserRule[F field.Element[F]](constructor func(expr.Expr[F], expr.Expr[F]) expr.Expr[F],
) sexp.RecursiveRule[expr.Expr[F]] {
	return func(name string, args []expr.Expr[F]) (expr.Expr[F], error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("expected at least 2 arguments for %s", name)
		}
		//
		e := args[0]
		//
		for _, arg := range args[1:] {
			e = constructor(e, arg)
		}
		//
		return e, nil
	}
}

func powParserRule[F field.Element[F]](_ string, args []expr.Expr[F]) (expr.Expr[F], error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected 2 arguments for ^")
	}
	//
	return expr.NewPow(args[0], args[1]), nil
}

// Extract an identifier from a given S-Expression, or return "" if it is not
// an identifier.
func identifier(term sexp.SExp) string {
	if s := term.AsSymbol(); s != nil && isIdentifier(s.Value) {
		return s.Value
	}
	//
	return ""
}

func reservedMessage(name string) string {
	return fmt.Sprintf("reserved variable name \"%s\"", name)
}

func isIdentifier(s string) bool {
	for i, c := range s {
		if c != '_' && !unicode.IsLetter(c) && (i == 0 || !unicode.IsDigit(c)) {
			return false
		}
	}
	//
	return s != ""
}
