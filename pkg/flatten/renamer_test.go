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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Renamer_01(t *testing.T) {
	r := newRenamer()
	//
	assert.Equal(t, "x", r.Use("x"))
	assert.Equal(t, "x_0", r.Use("x"))
	assert.Equal(t, "x_1", r.Use("x"))
	assert.Equal(t, "x_2", r.Use("x"))
	assert.Equal(t, "y", r.Use("y"))
	//
	assert.Equal(t, map[string]string{"x": "x_0", "x_0": "x_1", "x_1": "x_2"}, r.substitution)
	assert.Equal(t, "{x => x_0, x_0 => x_1, x_1 => x_2}", r.String())
	assert.Equal(t, "{x,x_0,x_1,x_2,y}", r.used.String())
}

func Test_Renamer_02(t *testing.T) {
	r := newRenamer()
	// Source name colliding with a suffixed name.
	assert.Equal(t, "x_0", r.Use("x_0"))
	assert.Equal(t, "x", r.Use("x"))
	assert.Equal(t, "x_1", r.Use("x"))
	//
	assert.Equal(t, map[string]string{"x_0": "x_1"}, r.substitution)
}

func Test_Renamer_03(t *testing.T) {
	r := newRenamer()
	//
	r.reserve("~out")
	//
	assert.Equal(t, "~out_0", r.Use("~out"))
	assert.Equal(t, "{~out => ~out_0}", r.String())
}
