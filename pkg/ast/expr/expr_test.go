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
	"testing"

	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/consensys/go-flatten/pkg/util/field/gf251"
	"github.com/stretchr/testify/assert"
)

type Element = gf251.Element

func num(n uint64) Expr[Element] {
	return Number[Element](n)
}

func v(name string) Expr[Element] {
	return NewVarAccess[Element](name)
}

func Test_IsLinear(t *testing.T) {
	tests := []struct {
		expr      Expr[Element]
		linear    bool
		flattened bool
	}{
		{num(1), true, true},
		{v("a"), true, true},
		{NewAdd(v("a"), num(1)), true, true},
		{NewSub(NewAdd(v("a"), v("b")), num(1)), true, true},
		{NewMul(num(2), num(3)), true, true},
		{NewMul(num(2), v("a")), true, true},
		{NewMul(v("a"), num(2)), true, true},
		{NewMul(v("a"), v("b")), false, true},
		{NewMul(NewAdd(v("a"), num(1)), v("b")), false, true},
		{NewDiv(v("a"), num(2)), true, true},
		{NewDiv(num(1), v("a")), false, true},
		{NewAdd(NewMul(v("a"), v("b")), num(1)), false, false},
		{NewMul(NewMul(num(2), v("a")), num(3)), false, true},
		{NewPow(v("a"), num(2)), false, false},
		{NewIfElse(NewLt(v("a"), v("b")), num(1), num(0)), false, false},
	}
	//
	for _, test := range tests {
		assert.Equal(t, test.linear, IsLinear(test.expr), "linear: %s", test.expr)
		assert.Equal(t, test.flattened, IsFlattened(test.expr), "flattened: %s", test.expr)
	}
}

func Test_Substitute(t *testing.T) {
	var (
		subst = map[string]string{"x": "x_0", "x_0": "x_1", "y": "y_0"}
		e     = NewIfElse(NewLt(v("x"), v("z")), NewMul(v("y"), v("x_0")), NewPow(v("x"), num(2)))
		ex    = NewIfElse(NewLt(v("x_1"), v("z")), NewMul(v("y_0"), v("x_1")), NewPow(v("x_1"), num(2)))
	)
	//
	assert.True(t, ex.Equals(Substitute(e, subst)), "got %s", Substitute(e, subst))
	// Original untouched
	assert.Equal(t, "if x < z then y * x_0 else x ** 2 fi", e.String())
}

func Test_Resolve(t *testing.T) {
	subst := map[string]string{"a": "b", "b": "c"}
	//
	assert.Equal(t, "c", Resolve("a", subst))
	assert.Equal(t, "c", Resolve("b", subst))
	assert.Equal(t, "d", Resolve("d", subst))
}

func Test_Uses(t *testing.T) {
	e := NewIfElse(NewLt(v("b"), num(3)), NewMul(v("c"), v("a")), NewSub(v("a"), v("d")))
	//
	assert.Equal(t, []string{"a", "b", "c", "d"}, Uses(e).ToArray())
	assert.Empty(t, Uses(num(1)).ToArray())
}

func Test_Depth(t *testing.T) {
	assert.Equal(t, uint(1), Depth(v("a")))
	assert.Equal(t, uint(2), Depth(NewAdd(v("a"), num(1))))
	assert.Equal(t, uint(4), Depth(NewAdd(v("a"), NewMul(num(2), NewSub(v("b"), num(1))))))
}

func Test_String(t *testing.T) {
	var minus128 = NewConst(field.Neg(field.TwoPowN[Element](7)))
	//
	assert.Equal(t, "(a * b) + 1", NewAdd(NewMul(v("a"), v("b")), num(1)).String())
	assert.Equal(t, "a / 2", NewDiv(v("a"), num(2)).String())
	assert.Equal(t, "123", minus128.String())
	assert.Equal(t, "a >= 1", NewCmp(GTEQ, v("a"), num(1)).String())
}

func Test_Equals(t *testing.T) {
	assert.True(t, NewAdd(v("a"), num(1)).Equals(NewAdd(v("a"), num(1))))
	assert.False(t, NewAdd(v("a"), num(1)).Equals(NewSub(v("a"), num(1))))
	assert.False(t, num(1).Equals(num(2)))
	assert.False(t, NewLt(v("a"), v("b")).Equals(NewCmp(GT, v("a"), v("b"))))
}
