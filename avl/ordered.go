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
	"slices"
)

// OrderedTree is an AVL tree supporting removal, min/max queries, deep
// copies and several traversal orders.
type OrderedTree[T any] struct {
	t tree[T]
}

// NewOrdered creates an empty tree ordered by cmp.Compare.
func NewOrdered[T cmp.Ordered]() *OrderedTree[T] {
	return NewOrderedFunc(cmp.Compare[T])
}

// NewOrderedFunc creates an empty tree ordered by compare. Values for
// which compare returns zero are treated as equal.
func NewOrderedFunc[T any](compare CompareFunc[T]) *OrderedTree[T] {
	return &OrderedTree[T]{t: tree[T]{compare: compare}}
}

// Insert adds value unless an equal value is already stored.
func (o *OrderedTree[T]) Insert(value T) {
	o.t.insert(value)
}

// Remove deletes the value equal to value and reports whether one was
// found.
func (o *OrderedTree[T]) Remove(value T) bool {
	return o.t.remove(value)
}

// Contains reports whether a value equal to value is stored.
func (o *OrderedTree[T]) Contains(value T) bool {
	return o.t.contains(value)
}

// Min returns the smallest value or ErrEmptyTree.
func (o *OrderedTree[T]) Min() (T, error) {
	return o.t.min()
}

// Max returns the largest value or ErrEmptyTree.
func (o *OrderedTree[T]) Max() (T, error) {
	return o.t.max()
}

// Clear drops every value.
func (o *OrderedTree[T]) Clear() {
	o.t.clear()
}

// Len returns the number of stored values.
func (o *OrderedTree[T]) Len() int {
	return o.t.size
}

// IsEmpty is true when the tree holds no values.
func (o *OrderedTree[T]) IsEmpty() bool {
	return o.t.size == 0
}

// Height returns the number of levels, 0 for an empty tree.
func (o *OrderedTree[T]) Height() int {
	return o.t.height()
}

// Clone returns an independent deep copy sharing no nodes with o.
func (o *OrderedTree[T]) Clone() *OrderedTree[T] {
	return &OrderedTree[T]{t: tree[T]{
		root:    cloneNode(o.t.root),
		size:    o.t.size,
		compare: o.t.compare,
	}}
}

// Move transfers every value to a new tree and leaves o empty but usable.
func (o *OrderedTree[T]) Move() *OrderedTree[T] {
	moved := &OrderedTree[T]{t: o.t}
	o.t.clear()
	return moved
}

// Iterator returns an iterator positioned at the smallest value.
func (o *OrderedTree[T]) Iterator() *Iterator[T] {
	return newIterator(o.t.root)
}

// All returns a lazy ascending sequence of the stored values.
func (o *OrderedTree[T]) All() iter.Seq[T] {
	return ascending(o.t.root)
}

// Backward returns a lazy descending sequence of the stored values.
func (o *OrderedTree[T]) Backward() iter.Seq[T] {
	return descending(o.t.root)
}

// Values returns the stored values in ascending order.
func (o *OrderedTree[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, o.t.size), o.All())
}

// InOrder visits left subtree, node, right subtree.
func (o *OrderedTree[T]) InOrder(visit func(T)) {
	inOrder(o.t.root, visit)
}

// PreOrder visits node, left subtree, right subtree.
func (o *OrderedTree[T]) PreOrder(visit func(T)) {
	preOrder(o.t.root, visit)
}

// PostOrder visits left subtree, right subtree, node.
func (o *OrderedTree[T]) PostOrder(visit func(T)) {
	postOrder(o.t.root, visit)
}

// LevelOrder visits the tree breadth first from the root.
func (o *OrderedTree[T]) LevelOrder(visit func(T)) {
	levelOrder(o.t.root, visit)
}

// Check verifies ordering, heights, balance and size.
func (o *OrderedTree[T]) Check() error {
	return o.t.check()
}

// Fprint draws the tree sideways on w and returns its depth.
func (o *OrderedTree[T]) Fprint(w io.Writer) int {
	return fprint(w, o.t.root)
}
