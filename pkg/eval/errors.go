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

import "github.com/pkg/errors"

var (
	// ErrConstraint indicates an equality constraint which does not hold.
	ErrConstraint = errors.New("constraint failure")
	// ErrDivisionByZero indicates a division whose divisor evaluated to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUndefined indicates a read of a variable which has no value.
	ErrUndefined = errors.New("undefined variable")
	// ErrArguments indicates a mismatch between the arguments given and those
	// expected.
	ErrArguments = errors.New("incorrect number of arguments")
	// ErrNoReturn indicates a program which completed without returning.
	ErrNoReturn = errors.New("missing return")
	// ErrRange indicates a value which cannot be decomposed into the required
	// number of bits.
	ErrRange = errors.New("value out of range")
	// ErrExponent indicates an exponent which is too large to evaluate.
	ErrExponent = errors.New("exponent too large")
)
