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
package gf251

import (
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	for i := uint8(0); i < N; i++ {
		if actual := New(i).ToByte(); actual != i {
			t.Errorf("*** decode(encode(%d)) = %d", i, actual)
		}
	}
}

func TestAdd(t *testing.T) {
	for i := uint32(100); i < N; i++ {
		for j := uint32(0); j <= i; j++ {
			var (
				expected = uint8((i + j) % N)
				lhs      = New(uint8(i))
				rhs      = New(uint8(j))
			)
			//
			if actual := lhs.Add(rhs).ToByte(); expected != actual {
				t.Errorf("*** %d + %d = %d (but expected %d)", i, j, actual, expected)
			}
		}
	}
}

func TestSub(t *testing.T) {
	for i := uint32(0); i < N; i += 3 {
		for j := uint32(0); j < N; j += 5 {
			var (
				expected = uint8((i + N - j) % N)
				lhs      = New(uint8(i))
				rhs      = New(uint8(j))
			)
			//
			if actual := lhs.Sub(rhs).ToByte(); expected != actual {
				t.Errorf("*** %d - %d = %d (but expected %d)", i, j, actual, expected)
			}
		}
	}
}

func TestMul(t *testing.T) {
	for i := uint32(0); i < N; i++ {
		for j := i; j < N; j++ {
			var (
				expected = uint8((i * j) % N)
				lhs      = New(uint8(i))
				rhs      = New(uint8(j))
			)
			//
			if actual := lhs.Mul(rhs).ToByte(); expected != actual {
				t.Errorf("*** %d * %d = %d (but expected %d)", i, j, actual, expected)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	if !New(0).Inverse().IsZero() {
		t.Errorf("*** 0⁻¹ should be 0")
	}
	//
	for i := uint8(1); i < N; i++ {
		val := New(i)
		//
		if !val.Mul(val.Inverse()).IsOne() {
			t.Errorf("*** %d * %d⁻¹ != 1", i, i)
		}
	}
}

func TestSetUint64(t *testing.T) {
	if actual := New(0).SetUint64(N + 7).ToByte(); actual != 7 {
		t.Errorf("*** expected 7, got %d", actual)
	}
}
