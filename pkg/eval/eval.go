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
package eval

import (
	"math"
	"math/big"

	"github.com/consensys/go-flatten/pkg/ast"
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Environment maps variables to their current values.
type Environment[F field.Element[F]] map[string]F

// Option configures an evaluation.
type Option[F field.Element[F]] func(*evaluator[F])

// Strict requires every definition of an already defined variable to agree with
// its current value, rather than overwrite it.  This corresponds to reading each
// definition as an equality constraint.
func Strict[F field.Element[F]]() Option[F] {
	return func(p *evaluator[F]) {
		p.strict = true
	}
}

// WithHint supplies values for variables whose definitions refer to
// themselves.
func WithHint[F field.Element[F]](hint Hint[F]) Option[F] {
	return func(p *evaluator[F]) {
		p.hint = hint
	}
}

type evaluator[F field.Element[F]] struct {
	strict bool
	hint   Hint[F]
}

// Run a given program with a given set of arguments, producing the value it
// returns.  Statements are executed in order until a return is reached.  An
// error arises if a constraint does not hold, a variable is read before being
// defined, or a division by zero is attempted.
func Run[F field.Element[F]](program ast.Program[F], args []F, opts ...Option[F]) (F, error) {
	var (
		zero F
		p    evaluator[F]
		env  = make(Environment[F])
	)
	//
	for _, opt := range opts {
		opt(&p)
	}
	//
	if len(args) != len(program.Arguments) {
		return zero, errors.Wrapf(ErrArguments, "%s expects %d (got %d)", program.Name, len(program.Arguments),
			len(args))
	}
	//
	for i, arg := range program.Arguments {
		env[arg] = args[i]
	}
	//
	for _, s := range program.Statements {
		if r, ok := s.(*stmt.Return[F]); ok {
			val, err := Evaluate(r.Expr, env)
			if err == nil {
				log.Debugf("%s returned %s", program.Name, val)
			}
			//
			return val, errors.Wrapf(err, "%s", program.Name)
		} else if err := p.execute(s, env); err != nil {
			return zero, errors.Wrapf(err, "%s", program.Name)
		}
	}
	//
	return zero, errors.Wrapf(ErrNoReturn, "%s", program.Name)
}

func (p *evaluator[F]) execute(s stmt.Stmt[F], env Environment[F]) error {
	switch s := s.(type) {
	case *stmt.Definition[F]:
		return p.define(s, env)
	case *stmt.Condition[F]:
		lhs, err := Evaluate(s.Left, env)
		if err != nil {
			return err
		}
		//
		rhs, err := Evaluate(s.Right, env)
		if err != nil {
			return err
		} else if lhs.Cmp(rhs) != 0 {
			return errors.Wrapf(ErrConstraint, "%s (%s != %s)", s, lhs, rhs)
		}
		//
		return nil
	default:
		panic("unreachable")
	}
}

func (p *evaluator[F]) define(s *stmt.Definition[F], env Environment[F]) error {
	current, defined := env[s.Name]
	check := defined && p.strict
	// Self-referential definitions are resolved by the hint.
	if !defined && s.Uses().Contains(s.Name) {
		if p.hint == nil {
			return errors.Wrapf(ErrUndefined, "%s (no hint)", s.Name)
		}
		//
		val, ok, err := p.hint(s.Name, env)
		//
		if err != nil {
			return err
		} else if !ok {
			return errors.Wrapf(ErrUndefined, "%s (no hint)", s.Name)
		}
		//
		env[s.Name] = val
		current, check = val, true
	}
	//
	val, err := Evaluate(s.Expr, env)
	//
	if err != nil {
		return err
	} else if check && val.Cmp(current) != 0 {
		return errors.Wrapf(ErrConstraint, "%s (%s != %s)", s, current, val)
	}
	//
	env[s.Name] = val
	//
	return nil
}

// Evaluate a given expression in a given environment.
func Evaluate[F field.Element[F]](e expr.Expr[F], env Environment[F]) (F, error) {
	var zero F
	//
	switch e := e.(type) {
	case *expr.Const[F]:
		return e.Value, nil
	case *expr.VarAccess[F]:
		if val, ok := env[e.Name]; ok {
			return val, nil
		}
		//
		return zero, errors.Wrapf(ErrUndefined, "%s", e.Name)
	case *expr.Add[F]:
		return evaluateBinary(e.Left, e.Right, env, F.Add)
	case *expr.Sub[F]:
		return evaluateBinary(e.Left, e.Right, env, F.Sub)
	case *expr.Mul[F]:
		return evaluateBinary(e.Left, e.Right, env, F.Mul)
	case *expr.Div[F]:
		divisor, err := Evaluate(e.Right, env)
		//
		if err != nil {
			return zero, err
		} else if divisor.IsZero() {
			return zero, errors.Wrapf(ErrDivisionByZero, "%s", e)
		}
		//
		dividend, err := Evaluate(e.Left, env)
		if err != nil {
			return zero, err
		}
		//
		return dividend.Mul(divisor.Inverse()), nil
	case *expr.Pow[F]:
		return evaluatePow(e, env)
	case *expr.IfElse[F]:
		holds, err := EvaluateCondition(e.Condition, env)
		//
		if err != nil {
			return zero, err
		} else if holds {
			return Evaluate(e.Then, env)
		}
		//
		return Evaluate(e.Else, env)
	default:
		panic("unreachable")
	}
}

// EvaluateCondition determines whether a given condition holds in a given
// environment.  Values are ordered by their signed readings (i.e. where p-v
// represents -v).
func EvaluateCondition[F field.Element[F]](c expr.Condition[F], env Environment[F]) (bool, error) {
	cmp, ok := c.(*expr.Cmp[F])
	if !ok {
		panic("unreachable")
	}
	//
	lhs, err := Evaluate(cmp.Left, env)
	if err != nil {
		return false, err
	}
	//
	rhs, err := Evaluate(cmp.Right, env)
	if err != nil {
		return false, err
	}
	//
	switch c := compare(lhs, rhs); cmp.Operator {
	case expr.EQ:
		return lhs.Cmp(rhs) == 0, nil
	case expr.NEQ:
		return lhs.Cmp(rhs) != 0, nil
	case expr.LT:
		return c < 0, nil
	case expr.LTEQ:
		return c <= 0, nil
	case expr.GT:
		return c > 0, nil
	case expr.GTEQ:
		return c >= 0, nil
	default:
		panic("unreachable")
	}
}

func evaluateBinary[F field.Element[F]](lhs expr.Expr[F], rhs expr.Expr[F], env Environment[F],
	fn func(F, F) F) (F, error) {
	var zero F
	//
	l, err := Evaluate(lhs, env)
	if err != nil {
		return zero, err
	}
	//
	r, err := Evaluate(rhs, env)
	if err != nil {
		return zero, err
	}
	//
	return fn(l, r), nil
}

func evaluatePow[F field.Element[F]](e *expr.Pow[F], env Environment[F]) (F, error) {
	var zero F
	//
	base, err := Evaluate(e.Base, env)
	if err != nil {
		return zero, err
	}
	//
	exponent, err := Evaluate(e.Exponent, env)
	if err != nil {
		return zero, err
	} else if exponent.Cmp64(math.MaxUint64) > 0 {
		return zero, errors.Wrapf(ErrExponent, "%s", e)
	}
	//
	return field.Pow(base, exponent.Uint64()), nil
}

// Compare two field elements by their signed readings, where any value above
// half the modulus is read as negative.
func compare[F field.Element[F]](lhs F, rhs F) int {
	return signed(lhs).Cmp(signed(rhs))
}

func signed[F field.Element[F]](val F) *big.Int {
	var (
		modulus = val.Modulus()
		half    = new(big.Int).Rsh(modulus, 1)
		v       = new(big.Int).SetBytes(val.Bytes())
	)
	//
	if v.Cmp(half) > 0 {
		v.Sub(v, modulus)
	}
	//
	return v
}
