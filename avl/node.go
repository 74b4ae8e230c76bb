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

type node[T any] struct {
	value  T
	height int // leaf = 1
	left   *node[T]
	right  *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, height: 1}
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func updateHeight[T any](n *node[T]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// rotateRight lifts y's left child into y's place.
func rotateRight[T any](y *node[T]) *node[T] {
	x := y.left

	y.left = x.right
	x.right = y

	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft lifts x's right child into x's place.
func rotateLeft[T any](x *node[T]) *node[T] {
	y := x.right

	x.right = y.left
	y.left = x

	updateHeight(x)
	updateHeight(y)

	return y
}

// rebalance restores the height invariant at n after one of its subtrees
// changed by at most one level and returns the new subtree root.
func rebalance[T any](n *node[T]) *node[T] {
	updateHeight(n)

	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			// Left-Right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			// Right-Left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// cloneNode deep-copies the subtree rooted at n.
func cloneNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value:  n.value,
		height: n.height,
		left:   cloneNode(n.left),
		right:  cloneNode(n.right),
	}
}
