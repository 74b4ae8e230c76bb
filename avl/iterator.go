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

// Iterator walks a tree in ascending order one value at a time.
//
//	for it := tree.Iterator(); it.Valid(); it.Next() {
//		fmt.Println(it.Value())
//	}
//
// The top of the stack is always the current node. An Iterator is
// invalidated by any mutation of its tree.
type Iterator[T any] struct {
	stack   []*node[T]
	current *node[T]
}

func newIterator[T any](root *node[T]) *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeft(root)
	if len(it.stack) > 0 {
		it.current = it.stack[len(it.stack)-1]
	}
	return it
}

func (it *Iterator[T]) pushLeft(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Valid reports whether the iterator points at a value.
func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}

// Value returns the current value. It may be called any number of times
// before Next. Calling it on an exhausted iterator panics.
func (it *Iterator[T]) Value() T {
	if it.current == nil {
		panic("avl: Value called on exhausted iterator")
	}
	return it.current.value
}

// Next advances to the following value in ascending order.
func (it *Iterator[T]) Next() {
	if len(it.stack) == 0 {
		it.current = nil
		return
	}

	n := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)

	if len(it.stack) == 0 {
		it.current = nil
		return
	}
	it.current = it.stack[len(it.stack)-1]
}

// Equal is true when both iterators are exhausted or both point at the
// same node.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if len(it.stack) == 0 || len(other.stack) == 0 {
		return len(it.stack) == 0 && len(other.stack) == 0
	}
	return it.stack[len(it.stack)-1] == other.stack[len(other.stack)-1]
}
