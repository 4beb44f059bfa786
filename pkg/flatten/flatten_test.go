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
	"strings"
	"testing"

	"github.com/consensys/go-flatten/pkg/ast"
	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/ast/stmt"
	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/consensys/go-flatten/pkg/util/field/bn254"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Element = bn254.Element

// ============================================================================
// Expressions
// ============================================================================

func Test_Flatten_Expr_01(t *testing.T) {
	// Already flat
	check_FlattenExpr(t, add(v("a"), num(1)), "a + 1")
}

func Test_Flatten_Expr_02(t *testing.T) {
	check_FlattenExpr(t, mul(v("a"), v("b")), "a * b")
}

func Test_Flatten_Expr_03(t *testing.T) {
	check_FlattenExpr(t, mul(add(v("a"), num(1)), sub(v("b"), v("c"))), "(a + 1) * (b - c)")
}

func Test_Flatten_Expr_04(t *testing.T) {
	check_FlattenExpr(t, add(mul(v("a"), v("b")), num(1)), "sym_0 + 1",
		"sym_0 = a * b")
}

func Test_Flatten_Expr_05(t *testing.T) {
	// Right-hand side is materialised before left-hand side.
	check_FlattenExpr(t, mul(mul(v("a"), v("b")), add(v("c"), mul(v("d"), v("e")))), "sym_1 * (c + sym_0)",
		"sym_0 = d * e",
		"sym_1 = a * b")
}

func Test_Flatten_Expr_06(t *testing.T) {
	check_FlattenExpr(t, div(num(1), mul(v("a"), v("a"))), "1 / sym_0",
		"sym_0 = a * a")
}

func Test_Flatten_Pow_01(t *testing.T) {
	check_FlattenExpr(t, pow(v("a"), num(2)), "a * a")
}

func Test_Flatten_Pow_02(t *testing.T) {
	check_FlattenExpr(t, pow(v("a"), num(3)), "sym_0 * a",
		"sym_0 = a * a")
}

func Test_Flatten_Pow_03(t *testing.T) {
	check_FlattenExpr(t, pow(v("a"), num(5)), "sym_2 * a",
		"sym_0 = a * a",
		"sym_1 = sym_0 * a",
		"sym_2 = sym_1 * a")
}

func Test_Flatten_Pow_04(t *testing.T) {
	check_FlattenExpr(t, pow(num(3), num(3)), "sym_0 * 3",
		"sym_0 = 3 * 3")
}

func Test_Flatten_Pow_05(t *testing.T) {
	check_FlattenExpr(t, add(pow(v("a"), num(2)), v("b")), "sym_0 + b",
		"sym_0 = a * a")
}

func Test_Flatten_Pow_06(t *testing.T) {
	// Two multiplication constraints for a cube.
	program := check_Flatten(t, prog(def("x", pow(v("a"), num(3))), ret(v("x"))),
		"sym_0 = a * a",
		"x = sym_0 * a",
		"return x")
	//
	var count = 0
	//
	for _, s := range program.Statements {
		if d, ok := s.(*stmt.Definition[Element]); ok {
			if m, ok := d.Expr.(*expr.Mul[Element]); ok {
				count++
				//
				assert.True(t, m.Right.Equals(v("a")))
			}
		}
	}
	//
	assert.Equal(t, 2, count)
}

func Test_Flatten_Condition_01(t *testing.T) {
	flattener := New[Element]()
	result, err := flattener.flattenCondition(lt(num(3), num(5)))
	require.NoError(t, err)
	//
	check_Listing(t, flattener.statements,
		"sym_0 = 3",
		"sym_1 = 5",
		"sym_2 = sym_0 - sym_1",
		"sym_2_b0 = sym_2_b0 * sym_2_b0",
		"sym_2_b1 = sym_2_b1 * sym_2_b1",
		"sym_2_b2 = sym_2_b2 * sym_2_b2",
		"sym_2_b3 = sym_2_b3 * sym_2_b3",
		"sym_2_b4 = sym_2_b4 * sym_2_b4",
		"sym_2_b5 = sym_2_b5 * sym_2_b5",
		"sym_2_b6 = sym_2_b6 * sym_2_b6",
		"sym_2_b7 = sym_2_b7 * sym_2_b7",
		"sym_2 = (sym_2_b7 * -128) + ((sym_2_b6 * 64) + ((sym_2_b5 * 32) + ((sym_2_b4 * 16) + "+
			"((sym_2_b3 * 8) + ((sym_2_b2 * 4) + ((sym_2_b1 * 2) + sym_2_b0))))))")
	//
	assert.True(t, result.Equals(v("sym_2_b7")))
}

func Test_Flatten_Condition_02(t *testing.T) {
	// Operands are flattened before being materialised.
	flattener := New[Element]()
	_, err := flattener.flattenCondition(lt(mul(mul(v("a"), v("b")), v("c")), v("d")))
	require.NoError(t, err)
	//
	check_Listing(t, flattener.statements[:4],
		"sym_0 = a * b",
		"sym_1 = sym_0 * c",
		"sym_2 = d",
		"sym_3 = sym_1 - sym_2")
}

func Test_Flatten_IfElse_01(t *testing.T) {
	listing := []string{
		"sym_0 = a",
		"sym_1 = b",
		"sym_2 = sym_0 - sym_1",
	}
	//
	for i := range ComparisonBitWidth {
		listing = append(listing, fmt.Sprintf("sym_2_b%d = sym_2_b%d * sym_2_b%d", i, i, i))
	}
	//
	listing = append(listing,
		"sym_2 = (sym_2_b7 * -128) + ((sym_2_b6 * 64) + ((sym_2_b5 * 32) + ((sym_2_b4 * 16) + "+
			"((sym_2_b3 * 8) + ((sym_2_b2 * 4) + ((sym_2_b1 * 2) + sym_2_b0))))))",
		"sym_3 = 1 - sym_2_b7",
		"sym_4 = sym_2_b7 * c",
		"sym_5 = sym_3 * d",
		"return sym_4 + sym_5")
	//
	check_Flatten(t, prog(ret(ifelse(lt(v("a"), v("b")), v("c"), v("d")))), listing...)
}

// ============================================================================
// Programs
// ============================================================================

func Test_Flatten_Program_01(t *testing.T) {
	// Already flat, hence unchanged.
	program := prog(
		def("x", mul(v("a"), v("b"))),
		def("y", add(v("x"), num(1))),
		cond(v("y"), mul(v("x"), v("x"))),
		ret(mul(v("y"), num(2))))
	//
	flattener := New[Element]()
	flattened, err := flattener.Flatten(program)
	require.NoError(t, err)
	//
	assert.True(t, program.Equals(flattened), "got %s", flattened.String())
	assert.Equal(t, uint(0), flattener.Symbols())
}

func Test_Flatten_Program_02(t *testing.T) {
	check_Flatten(t, prog(
		def("x", num(1)),
		def("y", v("x")),
		def("x", num(2)),
		def("z", v("x")),
		ret(add(v("y"), v("z")))),
		"x = 1",
		"y = x",
		"x_0 = 2",
		"z = x_0",
		"return y + z")
}

func Test_Flatten_Program_03(t *testing.T) {
	check_Flatten(t, prog(
		def("x", num(1)),
		def("x", add(v("x"), num(1))),
		def("x", add(v("x"), num(1))),
		def("x", mul(v("x"), v("x"))),
		ret(v("x"))),
		"x = 1",
		"x_0 = x + 1",
		"x_1 = x_0 + 1",
		"x_2 = x_1 * x_1",
		"return x_2")
}

func Test_Flatten_Program_04(t *testing.T) {
	// Linear side goes on the left.
	check_Flatten(t, prog(
		cond(mul(v("a"), v("b")), v("c")),
		cond(add(v("a"), num(1)), mul(add(v("b"), v("c")), mul(v("a"), v("a")))),
		ret(num(0))),
		"c == a * b",
		"sym_0 = a * a",
		"a + 1 == (b + c) * sym_0",
		"return 0")
}

func Test_Flatten_Program_05(t *testing.T) {
	check_Flatten(t, prog(
		def("x", pow(v("a"), num(3))),
		def("x", add(v("x"), mul(v("x"), v("a")))),
		ret(v("x"))),
		"sym_0 = a * a",
		"x = sym_0 * a",
		"sym_1 = x * a",
		"x_0 = x + sym_1",
		"return x_0")
}

func Test_Flatten_Program_06(t *testing.T) {
	// Arguments are not renamed, and state is reset between programs.
	flattener := New[Element]()
	//
	for range 2 {
		flattened, err := flattener.Flatten(prog(def("a", mul(v("a"), v("a"))), def("a", v("a")), ret(v("a"))))
		require.NoError(t, err)
		//
		check_Listing(t, flattened.Statements,
			"a = a * a",
			"a_0 = a",
			"return a_0")
	}
}

// ============================================================================
// Invariants
// ============================================================================

func Test_Flatten_Invariants(t *testing.T) {
	programs := []ast.Program[Element]{
		prog(ret(mul(mul(v("a"), v("b")), add(v("c"), mul(v("d"), v("e")))))),
		prog(def("x", pow(add(num(1), num(2)), num(2)))),
		prog(def("x", ifelse(lt(pow(v("a"), num(4)), v("b")), pow(v("a"), num(3)), mul(v("b"), v("b")))),
			cond(v("x"), ifelse(lt(v("a"), num(2)), num(1), mul(v("x"), v("x")))),
			def("x", sub(v("x"), div(v("a"), mul(v("b"), v("b"))))),
			ret(add(v("x"), ifelse(lt(v("x"), v("a")), v("a"), v("x"))))),
	}
	//
	for i, program := range programs {
		t.Run(fmt.Sprintf("program_%d", i), func(t *testing.T) {
			t.Parallel()
			//
			flattened, err := New[Element]().Flatten(program)
			//
			if i == 1 {
				// Base of power must be atomic
				assert.ErrorIs(t, err, ErrPowBase)
				return
			}
			//
			require.NoError(t, err)
			check_QuadraticSafe(t, flattened)
			check_Fresh(t, flattened)
			check_Unique(t, flattened)
		})
	}
}

func Test_Flatten_Concurrent(t *testing.T) {
	for i := range 16 {
		t.Run(fmt.Sprintf("i=%d", i), func(t *testing.T) {
			t.Parallel()
			//
			program := prog(def("x", pow(v("a"), num(uint64(i+2)))), def("x", mul(v("x"), v("x"))), ret(v("x")))
			flattener := New[Element]()
			//
			flattened, err := flattener.Flatten(program)
			require.NoError(t, err)
			// i+1 multiplications for the power, one for the square
			assert.Len(t, flattened.Statements, i+3)
			assert.Equal(t, uint(i), flattener.Symbols())
			check_QuadraticSafe(t, flattened)
		})
	}
}

// ============================================================================
// Errors
// ============================================================================

func Test_Flatten_Invalid_01(t *testing.T) {
	check_FlattenError(t, prog(ret(pow(num(2), v("a")))), ErrPowExponent)
}

func Test_Flatten_Invalid_02(t *testing.T) {
	check_FlattenError(t, prog(ret(pow(v("a"), num(1)))), ErrPowExponent)
}

func Test_Flatten_Invalid_03(t *testing.T) {
	check_FlattenError(t, prog(ret(pow(v("a"), num(0)))), ErrPowExponent)
}

func Test_Flatten_Invalid_04(t *testing.T) {
	// Exponent is checked before base.
	check_FlattenError(t, prog(ret(pow(add(v("a"), num(1)), v("b")))), ErrPowExponent)
}

func Test_Flatten_Invalid_05(t *testing.T) {
	check_FlattenError(t, prog(ret(pow(mul(v("a"), v("b")), num(2)))), ErrPowBase)
}

func Test_Flatten_Invalid_06(t *testing.T) {
	check_FlattenError(t, prog(cond(mul(v("a"), v("b")), mul(v("a"), v("b")))), ErrNonLinearCondition)
}

func Test_Flatten_Invalid_07(t *testing.T) {
	for _, op := range []expr.CmpOp{expr.EQ, expr.NEQ, expr.LTEQ, expr.GT, expr.GTEQ} {
		c := expr.NewCmp(op, v("a"), v("b"))
		check_FlattenError(t, prog(def("x", num(1)), ret(ifelse(c, num(1), num(0)))), ErrUnsupportedCondition)
	}
}

func Test_Flatten_Invalid_08(t *testing.T) {
	// Errors within conditions propagate
	check_FlattenError(t, prog(ret(ifelse(lt(pow(v("a"), v("b")), num(1)), num(1), num(0)))), ErrPowExponent)
}

func Test_Flatten_Invalid_09(t *testing.T) {
	// Definitions cannot overwrite auxiliary variables
	check_FlattenError(t, prog(def("sym_0", num(7)), def("x", mul(mul(v("a"), v("b")), v("c"))),
		ret(add(v("x"), v("sym_0")))), ErrReservedName)
}

func Test_Flatten_Invalid_10(t *testing.T) {
	// Nor read the bits of an auxiliary variable
	check_FlattenError(t, prog(cond(v("a"), v("sym_3_b7")), ret(v("a"))), ErrReservedName)
}

func Test_Flatten_Invalid_11(t *testing.T) {
	program := ast.NewProgram("main", []string{"a", "sym_1"}, ret(v("a")))
	check_FlattenError(t, program, ErrReservedName)
}

func Test_Flatten_Invalid_12(t *testing.T) {
	check_FlattenError(t, prog(ret(pow(v("a"), num(MaxPowExponent+1)))), ErrPowExponent)
	// Exponents beyond 64 bits
	huge := expr.NewConst(field.TwoPowN[Element](80))
	check_FlattenError(t, prog(ret(pow(v("a"), huge))), ErrPowExponent)
}

func Test_Flatten_Reserved(t *testing.T) {
	// Similar names are fine
	check_Flatten(t, prog(def("sym", num(1)), def("sym_x", num(2)), def("sym_0_c", num(3)), def("xsym_0", num(4)),
		ret(mul(v("a"), v("b")))),
		"sym = 1",
		"sym_x = 2",
		"sym_0_c = 3",
		"xsym_0 = 4",
		"return a * b")
}

// ============================================================================
// Helpers
// ============================================================================

func check_FlattenExpr(t *testing.T, e expr.Expr[Element], expected string, listing ...string) {
	t.Helper()
	//
	flattener := New[Element]()
	actual, err := flattener.flattenExpr(e)
	require.NoError(t, err)
	//
	assert.Equal(t, expected, actual.String())
	check_Listing(t, flattener.statements, listing...)
	assert.Equal(t, uint(len(listing)), flattener.Symbols())
}

func check_Flatten(t *testing.T, program ast.Program[Element], listing ...string) ast.Program[Element] {
	t.Helper()
	//
	flattened, err := Program(program)
	require.NoError(t, err)
	//
	assert.Equal(t, program.Name, flattened.Name)
	assert.Equal(t, program.Arguments, flattened.Arguments)
	check_Listing(t, flattened.Statements, listing...)
	//
	return flattened
}

func check_FlattenError(t *testing.T, program ast.Program[Element], expected error) {
	t.Helper()
	//
	flattened, err := Program(program)
	//
	require.Error(t, err)
	assert.True(t, errors.Is(err, expected), "unexpected error %s", err)
	assert.Nil(t, flattened.Statements)
	assert.True(t, strings.HasPrefix(err.Error(), "flattening main: "), "unexpected error %s", err)
}

func check_Listing(t *testing.T, stmts []stmt.Stmt[Element], expected ...string) {
	t.Helper()
	//
	actual := make([]string, len(stmts))
	//
	for i, s := range stmts {
		actual[i] = s.String()
	}
	//
	if len(expected) == 0 {
		expected = []string{}
	}
	//
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("unexpected listing (-expected +actual):\n%s", diff)
	}
}

func check_QuadraticSafe(t *testing.T, program ast.Program[Element]) {
	t.Helper()
	//
	for _, s := range program.Statements {
		switch s := s.(type) {
		case *stmt.Definition[Element]:
			assert.True(t, expr.IsFlattened(s.Expr), "not flat: %s", s)
		case *stmt.Return[Element]:
			assert.True(t, expr.IsFlattened(s.Expr), "not flat: %s", s)
		case *stmt.Condition[Element]:
			assert.True(t, expr.IsLinear(s.Left), "not linear: %s", s)
			assert.True(t, expr.IsFlattened(s.Right), "not flat: %s", s)
		}
	}
}

// Auxiliary symbols are introduced in strictly increasing order.
func check_Fresh(t *testing.T, program ast.Program[Element]) {
	t.Helper()
	//
	var next = 0
	//
	for _, name := range program.Definitions() {
		var index int
		//
		if _, err := fmt.Sscanf(name, "sym_%d", &index); err != nil || strings.Contains(name, "_b") {
			continue
		} else if index < next {
			// Redefinition of comparison difference
			continue
		}
		//
		assert.Equal(t, next, index, "symbol %s out of order", name)
		next = index + 1
	}
}

// Every source-level definition writes a distinct name.
func check_Unique(t *testing.T, program ast.Program[Element]) {
	t.Helper()
	//
	var seen = make(map[string]bool)
	//
	for _, name := range program.Definitions() {
		if !strings.HasPrefix(name, "sym_") {
			assert.False(t, seen[name], "%s defined twice", name)
			seen[name] = true
		}
	}
}

func prog(stmts ...stmt.Stmt[Element]) ast.Program[Element] {
	return ast.NewProgram("main", []string{"a", "b", "c", "d", "e"}, stmts...)
}

func def(name string, e expr.Expr[Element]) stmt.Stmt[Element] {
	return stmt.NewDefinition(name, e)
}

func ret(e expr.Expr[Element]) stmt.Stmt[Element] {
	return stmt.NewReturn(e)
}

func cond(lhs expr.Expr[Element], rhs expr.Expr[Element]) stmt.Stmt[Element] {
	return stmt.NewCondition(lhs, rhs)
}

func num(n uint64) expr.Expr[Element] {
	return expr.Number[Element](n)
}

func v(name string) expr.Expr[Element] {
	return expr.NewVarAccess[Element](name)
}

func add(lhs, rhs expr.Expr[Element]) expr.Expr[Element] {
	return expr.NewAdd(lhs, rhs)
}

func sub(lhs, rhs expr.Expr[Element]) expr.Expr[Element] {
	return expr.NewSub(lhs, rhs)
}

func mul(lhs, rhs expr.Expr[Element]) expr.Expr[Element] {
	return expr.NewMul(lhs, rhs)
}

func div(lhs, rhs expr.Expr[Element]) expr.Expr[Element] {
	return expr.NewDiv(lhs, rhs)
}

func pow(base, exponent expr.Expr[Element]) expr.Expr[Element] {
	return expr.NewPow(base, exponent)
}

func lt(lhs, rhs expr.Expr[Element]) expr.Condition[Element] {
	return expr.NewLt(lhs, rhs)
}

func ifelse(c expr.Condition[Element], then, els expr.Expr[Element]) expr.Expr[Element] {
	return expr.NewIfElse(c, then, els)
}
