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

package avl_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/cybrota/avlindex/avl"
	"github.com/stretchr/testify/assert"
)

type stringItem struct {
	s string
}

func compareItems(a, b stringItem) int {
	return strings.Compare(a.s, b.s)
}

func TestBalancedSequentialHeight(t *testing.T) {
	tree := avl.NewBalanced[int]()
	for v := 1; v <= 7; v++ {
		tree.Insert(v)
	}

	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, 7, tree.Len())
	assert.NoError(t, tree.Check())
}

func TestBalancedHeightBound(t *testing.T) {
	tree := avl.NewBalanced[int]()
	for n := 1; n <= 1024; n++ {
		tree.Insert(n)
		bound := int(math.Ceil(math.Log2(float64(n+1)))) + 1
		if tree.Height() > bound {
			t.Fatalf("height %d after %d sequential inserts exceeds %d", tree.Height(), n, bound)
		}
	}
}

func TestBalancedInOrder(t *testing.T) {
	tree := avl.NewBalanced[int]()
	for _, v := range []int{30, 20, 10, 40, 50} {
		tree.Insert(v)
	}

	var got []int
	tree.InOrder(func(v int) {
		got = append(got, v)
	})
	assert.Equal(t, []int{10, 20, 30, 40, 50}, got)
	assert.Equal(t, got, slices.Collect(tree.All()))
}

func TestBalancedDuplicates(t *testing.T) {
	// lots of duplicates must not increment the count
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	unique := map[stringItem]struct{}{}

	tree := avl.NewBalancedFunc(compareItems)
	for _, item := range addList {
		tree.Insert(item)
		unique[item] = struct{}{}
	}

	assert.Equal(t, len(unique), tree.Len())
	assert.NoError(t, tree.Check())
	for item := range unique {
		assert.True(t, tree.Contains(item), "missing %q", item.s)
	}
	assert.False(t, tree.Contains(stringItem{"9999"}))
}

func TestBalancedEmpty(t *testing.T) {
	tree := avl.NewBalanced[string]()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.False(t, tree.Contains("hello"))
	assert.Empty(t, slices.Collect(tree.All()))

	tree.Insert("hello")
	assert.False(t, tree.IsEmpty())
	assert.True(t, tree.Contains("hello"))
	assert.False(t, tree.Contains("world"))
}

func TestBalancedFprintDepth(t *testing.T) {
	tree := avl.NewBalanced[int]()
	for v := 1; v <= 15; v++ {
		tree.Insert(v)
	}

	var sb strings.Builder
	assert.Equal(t, tree.Height(), tree.Fprint(&sb))
	assert.Equal(t, 15, strings.Count(sb.String(), "\n"))
}
