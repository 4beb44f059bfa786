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
package set

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// SortedSet is an array of unique elements maintained in ascending order.
// Membership checks are logarithmic whilst insertion is linear in the size of
// the set, which suits the relatively small sets of names arising in
// individual programs.
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns a sorted set initialised with zero or more elements.
func NewSortedSet[T cmp.Ordered](elements ...T) *SortedSet[T] {
	var set SortedSet[T]
	//
	for _, e := range elements {
		set.Insert(e)
	}
	//
	return &set
}

// Contains returns true if a given element is in the set.
//
//nolint:revive
func (p *SortedSet[T]) Contains(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	return i < len(data) && data[i] == element
}

// Insert an element into this sorted set, returning true if it was not
// already present.
//
//nolint:revive
func (p *SortedSet[T]) Insert(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	if i < len(data) && data[i] == element {
		return false
	}
	// No, item was not found
	ndata := make([]T, len(data)+1)
	copy(ndata, data[0:i])
	ndata[i] = element
	copy(ndata[i+1:], data[i:])
	*p = ndata
	//
	return true
}

// InsertSorted inserts all elements in a given sorted set into this set.
//
//nolint:revive
func (p *SortedSet[T]) InsertSorted(q *SortedSet[T]) {
	left := *p
	right := *q
	// Check for total inclusion
	n := countDuplicates(left, right)
	//
	if n == len(right) {
		return
	}
	// Allocate space
	ndata := make([]T, len(left)+len(right)-n)
	// Merge
	mergeSorted(ndata, left, right)
	//
	*p = ndata
}

// Len returns the number of elements in this set.
func (p *SortedSet[T]) Len() uint {
	return uint(len(*p))
}

// ToArray returns the elements of this set (in ascending order).
func (p *SortedSet[T]) ToArray() []T {
	return *p
}

func (p *SortedSet[T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, e := range *p {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprint(e))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Determine number of duplicate elements
func countDuplicates[T cmp.Ordered](left []T, right []T) int {
	var i, j, n int
	//
	for i < len(left) && j < len(right) {
		switch {
		case left[i] < right[j]:
			i++
		case left[i] > right[j]:
			j++
		default:
			i++
			j++
			n++
		}
	}
	//
	return n
}

// Merge two sets of sorted arrays (left and right) into a target array.  This
// assumes the target array is big enough.
func mergeSorted[T cmp.Ordered](target []T, left []T, right []T) {
	var i, j, k int
	// Merge overlap of both sets
	for ; i < len(left) && j < len(right); k++ {
		switch {
		case left[i] < right[j]:
			target[k] = left[i]
			i++
		case left[i] > right[j]:
			target[k] = right[j]
			j++
		default:
			target[k] = left[i]
			i++
			j++
		}
	}
	// Handle anything left
	if i < len(left) {
		copy(target[k:], left[i:])
	} else if j < len(right) {
		copy(target[k:], right[j:])
	}
}
