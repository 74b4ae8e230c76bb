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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avlindex/avl"
)

// visualizeTree draws the tree sideways (root on the left, larger values
// above) followed by its properties and in-order listing.
func visualizeTree[T any](w io.Writer, tree *avl.OrderedTree[T]) {
	fmt.Fprintf(w, "Tree Visualization:\n\n")

	if tree.IsEmpty() {
		fmt.Fprintln(w, "Empty tree")
		return
	}

	depth := tree.Fprint(w)

	balanced := "Yes (AVL property maintained)"
	if err := tree.Check(); err != nil {
		balanced = fmt.Sprintf("No (%v)", err)
	}

	fmt.Fprintf(w, "\nTree Properties:\n")
	fmt.Fprintf(w, "* Size: %d nodes\n", tree.Len())
	fmt.Fprintf(w, "* Height: %d levels\n", depth)
	fmt.Fprintf(w, "* Balanced: %s\n\n", balanced)

	fmt.Fprintf(w, "In-order traversal: %s\n", joinValues(tree, " -> "))
}

func joinValues[T any](tree *avl.OrderedTree[T], sep string) string {
	parts := make([]string, 0, tree.Len())
	for v := range tree.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, sep)
}
