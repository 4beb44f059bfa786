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

import "github.com/pkg/errors"

var (
	// ErrPowExponent indicates a power whose exponent is not a constant greater
	// than one, or exceeds MaxPowExponent.
	ErrPowExponent = errors.New("expected number > 1 as pow exponent")
	// ErrPowBase indicates a power whose base is neither a variable nor a
	// constant.
	ErrPowBase = errors.New("only variables and numbers allowed in pow base")
	// ErrUnsupportedCondition indicates a condition other than less-than.
	ErrUnsupportedCondition = errors.New("unsupported condition")
	// ErrNonLinearCondition indicates an equality constraint where neither side
	// is linear.
	ErrNonLinearCondition = errors.New("neither side of constraint is linear")
	// ErrReservedName indicates a variable whose name clashes with an auxiliary
	// variable.
	ErrReservedName = errors.New("reserved variable name")
)
