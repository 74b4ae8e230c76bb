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
	"iter"
)

func inOrder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.value)
	inOrder(n.right, visit)
}

func preOrder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	visit(n.value)
	preOrder(n.left, visit)
	preOrder(n.right, visit)
}

func postOrder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	postOrder(n.left, visit)
	postOrder(n.right, visit)
	visit(n.value)
}

// levelOrder visits breadth first using a FIFO queue seeded with root.
func levelOrder[T any](root *node[T], visit func(T)) {
	if root == nil {
		return
	}
	queue := []*node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]

		visit(n.value)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}

func ascending[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := newIterator(root); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// descending mirrors the iterator: stack of right spines.
func descending[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*node[T]
		pushRight := func(n *node[T]) {
			for n != nil {
				stack = append(stack, n)
				n = n.right
			}
		}
		pushRight(root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			pushRight(n.left)
		}
	}
}
