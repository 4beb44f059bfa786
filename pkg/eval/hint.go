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
	"strconv"
	"strings"

	"github.com/consensys/go-flatten/pkg/util/field"
	"github.com/pkg/errors"
)

// Hint computes the value of a variable whose definition refers to itself, such
// as "x_b0 = x_b0 * x_b0".  Such definitions constrain, rather than determine,
// the value of the variable.  A hint returns false when it cannot supply a
// value for the given variable.
type Hint[F field.Element[F]] func(name string, env Environment[F]) (F, bool, error)

// BitDecomposition returns a hint which supplies bit i of a variable d for any
// variable named d_bi.  The value of d is read as a signed two's complement
// integer of the given bitwidth, where any value above half the modulus is
// negative (i.e. p-v represents -v).  This agrees with the ordering used when
// evaluating comparisons.  An error arises if d's value lies outside the range
// of such integers.
func BitDecomposition[F field.Element[F]](bitwidth uint) Hint[F] {
	return func(name string, env Environment[F]) (F, bool, error) {
		var zero F
		// Split name into variable and bit index
		index := strings.LastIndex(name, "_b")
		if index < 0 {
			return zero, false, nil
		}
		//
		bit, err := strconv.ParseUint(name[index+2:], 10, 8)
		if err != nil || uint(bit) >= bitwidth {
			return zero, false, nil
		}
		//
		val, ok := env[name[:index]]
		if !ok {
			return zero, false, nil
		}
		//
		signed, ok := field.Signed(val, bitwidth)
		if !ok {
			return zero, true, errors.Wrapf(ErrRange, "%s = %s does not fit in i%d", name[:index], val, bitwidth)
		}
		//
		return field.Uint64[F]((uint64(signed) >> bit) & 1), true, nil
	}
}
