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
	"errors"
)

// ErrEmptyTree is returned by Min and Max when the tree holds no values.
var ErrEmptyTree = errors.New("avl: tree is empty")

// CompareFunc orders two values: negative when a < b, zero when they are
// equal and positive when a > b.
type CompareFunc[T any] func(a, b T) int

// tree is the engine shared by BalancedTree and OrderedTree.
type tree[T any] struct {
	root    *node[T]
	size    int
	compare CompareFunc[T]
}

func (t *tree[T]) insert(value T) {
	t.root = t.insertRecursive(t.root, value)
}

func (t *tree[T]) insertRecursive(n *node[T], value T) *node[T] {
	if n == nil {
		t.size++
		return newNode(value)
	}

	c := t.compare(value, n.value)
	switch {
	case c < 0:
		n.left = t.insertRecursive(n.left, value)
	case c > 0:
		n.right = t.insertRecursive(n.right, value)
	default:
		// duplicate: first write wins
		return n
	}

	return rebalance(n)
}

func (t *tree[T]) contains(value T) bool {
	n := t.root
	for n != nil {
		c := t.compare(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

func (t *tree[T]) remove(value T) bool {
	var found bool
	t.root, found = t.removeRecursive(t.root, value)
	return found
}

func (t *tree[T]) removeRecursive(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return nil, false // not in tree
	}

	found := false
	c := t.compare(value, n.value)
	switch {
	case c < 0:
		n.left, found = t.removeRecursive(n.left, value)
	case c > 0:
		n.right, found = t.removeRecursive(n.right, value)
	default:
		// Case 1: No children
		if n.left == nil && n.right == nil {
			t.size--
			return nil, true
		}
		// Case 2: One child
		if n.left == nil {
			t.size--
			return n.right, true
		}
		if n.right == nil {
			t.size--
			return n.left, true
		}
		// Case 3: Two children, pull up the in-order successor
		successor := minNode(n.right)
		n.value = successor.value
		n.right, found = t.removeRecursive(n.right, successor.value)
	}

	return rebalance(n), found
}

func (t *tree[T]) min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return minNode(t.root).value, nil
}

func (t *tree[T]) max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxNode(t.root).value, nil
}

func (t *tree[T]) clear() {
	t.root = nil
	t.size = 0
}

func (t *tree[T]) height() int {
	return height(t.root)
}
