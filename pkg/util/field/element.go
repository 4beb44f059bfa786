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

import (
	"fmt"
	"math/big"
	"strings"
)

// An Element of a prime-order field.  Elements are values, hence every
// operation returns a fresh element rather than updating the receiver.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Bytes returns the big-endian encoded value of x.
	Bytes() []byte
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Cmp64 compares x against a small (unsigned) integer, returning 1 if x > y,
	// 0 if x = y and -1 if x < y.
	Cmp64(y uint64) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// SetBytes constructs an element from a big-endian byte array (reducing
	// modulo the field order as necessary).
	SetBytes(bytes []byte) Operand
	// SetUint64 constructs an element from a given unsigned integer.
	SetUint64(val uint64) Operand
	// Compute x - y
	Sub(y Operand) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
	// Uint64 returns the numerical value of x, which is only meaningful when
	// Cmp64 has established that it fits.
	Uint64() uint64
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BigInt construct a field element from a given big.Int.  Negative values are
// mapped onto their additive inverse (i.e. -x is represented as p-x).
func BigInt[F Element[F]](val big.Int) F {
	var (
		element F
		abs     big.Int
	)
	//
	abs.Abs(&val)
	element = element.SetBytes(abs.Bytes())
	// Handle negative values
	if val.Sign() < 0 {
		return Neg(element)
	}
	//
	return element
}

// Neg constructs the additive inverse of a given element (i.e. 0 - x).
func Neg[F Element[F]](val F) F {
	return Zero[F]().Sub(val)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}

// Parse a field element from its textual form.  Decimal and (0x prefixed)
// hexadecimal literals are accepted, as are negative decimal literals.
func Parse[F Element[F]](text string) (F, error) {
	var (
		val  big.Int
		ok   bool
		zero F
	)
	//
	if strings.HasPrefix(text, "0x") {
		_, ok = val.SetString(text[2:], 16)
	} else {
		_, ok = val.SetString(text, 10)
	}
	//
	if !ok {
		return zero, fmt.Errorf("invalid numeric literal \"%s\"", text)
	}
	//
	return BigInt[F](val), nil
}
