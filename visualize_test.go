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
	"strings"
	"testing"

	"github.com/cybrota/avlindex/avl"
)

func TestVisualizeEmptyTree(t *testing.T) {
	var sb strings.Builder
	visualizeTree(&sb, avl.NewOrdered[int]())

	if !strings.Contains(sb.String(), "Empty tree") {
		t.Errorf("expected empty tree message, got:\n%s", sb.String())
	}
}

func TestVisualizeTree(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for v := 1; v <= 7; v++ {
		tree.Insert(v)
	}

	var sb strings.Builder
	visualizeTree(&sb, tree)
	out := sb.String()

	for _, want := range []string{
		"|------+ 4 +0",
		"* Size: 7 nodes",
		"* Height: 3 levels",
		"* Balanced: Yes",
		"In-order traversal: 1 -> 2 -> 3 -> 4 -> 5 -> 6 -> 7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("visualization missing %q:\n%s", want, out)
		}
	}
}
