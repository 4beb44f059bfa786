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
package field

import "math/big"

// Pow takes a given value to the power n.
func Pow[F Element[F]](val F, n uint64) F {
	if n == 0 {
		val = val.SetUint64(1)
	} else if n > 1 {
		m := n / 2
		// Check for odd case
		if n%2 == 1 {
			tmp := val
			val = Pow(val, m)
			val = val.Mul(val).Mul(tmp)
		} else {
			// Even case is easy
			val = Pow(val, m)
			val = val.Mul(val)
		}
	}
	//
	return val
}

// Signed interprets a given element as a signed integer of the given bitwidth.
// Elements above half the modulus are read as negative, such that p-x
// represents -x.  This returns false when the element lies outside the range
// [-2^(n-1), 2^(n-1)) under that reading.  In fields whose modulus is not much
// larger than 2^n, part of that range is unreachable.
func Signed[F Element[F]](val F, bitwidth uint) (int64, bool) {
	var (
		modulus = val.Modulus()
		half    = new(big.Int).Rsh(modulus, 1)
		bound   = new(big.Int).Lsh(big.NewInt(1), bitwidth-1)
		v       = new(big.Int).SetBytes(val.Bytes())
	)
	// Centre around zero
	if v.Cmp(half) > 0 {
		v.Sub(v, modulus)
	}
	//
	if v.Cmp(bound) >= 0 || v.Cmp(bound.Neg(bound)) < 0 {
		return 0, false
	}
	//
	return v.Int64(), true
}
