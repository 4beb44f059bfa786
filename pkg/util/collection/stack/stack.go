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
package stack

import "slices"

// Stack is a LIFO work list, as used for walking expression trees without
// recursion.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack, optionally seeded with the given items such
// that the last is on top.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{slices.Clone(items)}
}

// IsEmpty checks whether any items remain.
func (p *Stack[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Peek returns the item at a given depth without removing it, where depth 0 is
// the top.
func (p *Stack[T]) Peek(depth uint) T {
	if depth >= p.Len() {
		panic("peek out-of-bounds")
	}
	//
	return p.items[len(p.items)-1-int(depth)]
}

// Push an item onto the stack.
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// PushReversed pushes items in reverse order, such that the first item ends up
// on top and is therefore popped first.
func (p *Stack[T]) PushReversed(items []T) {
	for i := len(items) - 1; i >= 0; i-- {
		p.items = append(p.items, items[i])
	}
}

// Pop removes and returns the top item.
func (p *Stack[T]) Pop() T {
	var (
		zero T
		n    = len(p.items) - 1
	)
	//
	if n < 0 {
		panic("cannot pop from empty stack")
	}
	//
	item := p.items[n]
	p.items[n] = zero
	p.items = p.items[:n]
	//
	return item
}
