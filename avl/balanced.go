// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"cmp"
	"io"
	"iter"
)

// BalancedTree is an insert-only AVL tree. Values are never removed once
// stored; use OrderedTree when deletion is needed.
type BalancedTree[T any] struct {
	t tree[T]
}

// NewBalanced creates an empty tree ordered by cmp.Compare.
func NewBalanced[T cmp.Ordered]() *BalancedTree[T] {
	return NewBalancedFunc(cmp.Compare[T])
}

// NewBalancedFunc creates an empty tree ordered by compare.
func NewBalancedFunc[T any](compare CompareFunc[T]) *BalancedTree[T] {
	return &BalancedTree[T]{t: tree[T]{compare: compare}}
}

// Insert adds value unless an equal value is already stored.
func (b *BalancedTree[T]) Insert(value T) {
	b.t.insert(value)
}

// Contains reports whether a value equal to value is stored.
func (b *BalancedTree[T]) Contains(value T) bool {
	return b.t.contains(value)
}

// Len returns the number of stored values.
func (b *BalancedTree[T]) Len() int {
	return b.t.size
}

// IsEmpty is true when the tree holds no values.
func (b *BalancedTree[T]) IsEmpty() bool {
	return b.t.size == 0
}

// Height returns the number of levels, 0 for an empty tree.
func (b *BalancedTree[T]) Height() int {
	return b.t.height()
}

// InOrder calls visit for every value in ascending order.
func (b *BalancedTree[T]) InOrder(visit func(T)) {
	inOrder(b.t.root, visit)
}

// All returns a lazy ascending sequence of the stored values.
func (b *BalancedTree[T]) All() iter.Seq[T] {
	return ascending(b.t.root)
}

// Check verifies ordering, heights, balance and size.
func (b *BalancedTree[T]) Check() error {
	return b.t.check()
}

// Fprint draws the tree sideways on w and returns its depth.
func (b *BalancedTree[T]) Fprint(w io.Writer) int {
	return fprint(w, b.t.root)
}
