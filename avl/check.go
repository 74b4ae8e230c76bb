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
	"fmt"
)

// check walks the whole tree and reports the first broken invariant.
func (t *tree[T]) check() error {
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("avl: size is %d but %d nodes are reachable", t.size, count)
	}
	return nil
}

// internal: lo and hi are the nearest ancestors bounding n, nil if none
func (t *tree[T]) checkNode(n, lo, hi *node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.compare(n.value, lo.value) <= 0 {
		return 0, fmt.Errorf("avl: node %v is not greater than ancestor %v", n.value, lo.value)
	}
	if hi != nil && t.compare(n.value, hi.value) >= 0 {
		return 0, fmt.Errorf("avl: node %v is not less than ancestor %v", n.value, hi.value)
	}

	nl, err := t.checkNode(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	nr, err := t.checkNode(n.right, n, hi)
	if err != nil {
		return 0, err
	}

	if expected := max(height(n.left), height(n.right)) + 1; n.height != expected {
		return 0, fmt.Errorf("avl: node %v height is %d, expected %d", n.value, n.height, expected)
	}
	if bf := balanceFactor(n); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("avl: node %v balance factor is %+d", n.value, bf)
	}
	return nl + nr + 1, nil
}
