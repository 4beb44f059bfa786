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
	"maps"
	"slices"
	"strings"

	"github.com/consensys/go-flatten/pkg/util/collection/set"
)

// renamer ensures every definition writes a distinct variable.  When a name is
// redefined, the new definition is given a suffixed name (e.g. x_0, x_1, ...)
// and the substitution map is updated so that subsequent reads of the original
// name resolve to the new one.
type renamer struct {
	// Names already defined.
	used *set.SortedSet[string]
	// Substitution applied to reads.  Entries chain, for example x => x_0 and
	// x_0 => x_1.
	substitution map[string]string
}

func newRenamer() renamer {
	return renamer{set.NewSortedSet[string](), make(map[string]string)}
}

// Use returns a fresh name for a definition of the given variable.  Candidates
// are name, name_0, name_1, etc.  On the first suffixed candidate, name is
// mapped to it.  Otherwise, the previous suffixed candidate is.
func (p *renamer) Use(name string) string {
	var candidate = name
	//
	for i := 0; ; i++ {
		if p.used.Insert(candidate) {
			if i == 1 {
				p.substitution[name] = candidate
			} else if i > 1 {
				p.substitution[fmt.Sprintf("%s_%d", name, i-2)] = candidate
			}
			//
			return candidate
		}
		//
		candidate = fmt.Sprintf("%s_%d", name, i)
	}
}

// Mark a given name as used.
func (p *renamer) reserve(name string) {
	p.used.Insert(name)
}

// String returns the substitution map, ordered by key.
func (p *renamer) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, k := range slices.Sorted(maps.Keys(p.substitution)) {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		fmt.Fprintf(&builder, "%s => %s", k, p.substitution[k])
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
