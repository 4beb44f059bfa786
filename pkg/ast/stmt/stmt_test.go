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
package stmt

import (
	"testing"

	"github.com/consensys/go-flatten/pkg/ast/expr"
	"github.com/consensys/go-flatten/pkg/util/field/gf251"
	"github.com/stretchr/testify/assert"
)

type Element = gf251.Element

func v(name string) expr.Expr[Element] {
	return expr.NewVarAccess[Element](name)
}

func Test_Stmt_01(t *testing.T) {
	s := NewDefinition("x", expr.NewMul(v("x"), expr.NewAdd(v("b"), v("a"))))
	//
	assert.Equal(t, []string{"a", "b", "x"}, s.Uses().ToArray())
	assert.Equal(t, []string{"x"}, s.Definitions())
	assert.Equal(t, "x = x * (b + a)", s.String())
}

func Test_Stmt_02(t *testing.T) {
	s := NewCondition(v("y"), expr.NewMul(v("a"), v("y")))
	//
	assert.Equal(t, []string{"a", "y"}, s.Uses().ToArray())
	assert.Empty(t, s.Definitions())
	assert.Len(t, Expressions(s), 2)
}

func Test_Stmt_03(t *testing.T) {
	s := NewReturn(expr.Number[Element](1))
	//
	assert.Equal(t, uint(0), s.Uses().Len())
	assert.Empty(t, s.Definitions())
	assert.True(t, s.Equals(NewReturn(expr.Number[Element](1))))
	assert.False(t, s.Equals(NewReturn(v("a"))))
}
