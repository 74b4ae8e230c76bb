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
	"strings"
	"testing"

	"github.com/cybrota/avlindex/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type OrderedTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestOrderedTreeOperations(t *testing.T) {
	testCases := []OrderedTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []string{"dog", "cat"},
			KeysToDelete:  []string{"cow"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"dog", "cat", "eel"},
			KeysToDelete:  []string{"eel", "dog", "cat"},
			ExpectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avl.NewOrdered[string]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}

			assert.Equal(t, tc.ExpectedOrder, tree.Values())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
			assert.NoError(t, tree.Check())
		})
	}
}

func TestInsertSeven(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{5, 3, 7, 1, 9, 4, 6} {
		tree.Insert(v)
	}

	var got []int
	tree.InOrder(func(v int) {
		got = append(got, v)
	})
	assert.Equal(t, []int{1, 3, 4, 5, 6, 7, 9}, got)
	assert.Equal(t, 7, tree.Len())
}

func TestRemoveMiddle(t *testing.T) {
	tree := avl.NewOrdered[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.Insert(3)

	require.True(t, tree.Remove(2))
	assert.Equal(t, 2, tree.Len())
	assert.True(t, tree.Contains(1))
	assert.True(t, tree.Contains(3))
	assert.False(t, tree.Contains(2))
}

func TestEmptyTree(t *testing.T) {
	tree := avl.NewOrdered[int]()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Remove(5))
	assert.Equal(t, 0, tree.Len())

	_, err := tree.Min()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
	_, err = tree.Max()
	assert.ErrorIs(t, err, avl.ErrEmptyTree)

	visited := 0
	count := func(int) { visited++ }
	tree.InOrder(count)
	tree.PreOrder(count)
	tree.PostOrder(count)
	tree.LevelOrder(count)
	for range tree.All() {
		visited++
	}
	for range tree.Backward() {
		visited++
	}
	assert.Zero(t, visited)
	assert.Empty(t, tree.Values())
	assert.False(t, tree.Iterator().Valid())
	assert.NoError(t, tree.Check())
}

func TestDuplicateInsertKeepsFirst(t *testing.T) {
	type entry struct {
		key   int
		label string
	}
	tree := avl.NewOrderedFunc(func(a, b entry) int {
		return a.key - b.key
	})

	tree.Insert(entry{1, "first"})
	tree.Insert(entry{1, "second"})

	assert.Equal(t, 1, tree.Len())
	got, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, "first", got.label)
}

func TestInsertIsIdempotent(t *testing.T) {
	once := avl.NewOrdered[int]()
	twice := avl.NewOrdered[int]()
	for _, v := range []int{8, 4, 12, 2, 6} {
		once.Insert(v)
		twice.Insert(v)
		twice.Insert(v)
	}

	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.Values(), twice.Values())
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(v)
	}
	before := tree.Values()

	for _, v := range []int{10, 45, 65, 90} {
		tree.Insert(v)
		require.True(t, tree.Remove(v))
		assert.Equal(t, len(before), tree.Len())
		assert.Equal(t, before, tree.Values())
		assert.NoError(t, tree.Check())
	}
}

func TestMinMax(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{42, -3, 17, 99, 0} {
		tree.Insert(v)
	}

	lo, err := tree.Min()
	require.NoError(t, err)
	hi, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, -3, lo)
	assert.Equal(t, 99, hi)

	tree.Remove(-3)
	tree.Remove(99)
	lo, _ = tree.Min()
	hi, _ = tree.Max()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 42, hi)
}

func TestClear(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for v := range 10 {
		tree.Insert(v)
	}

	tree.Clear()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Values())

	tree.Insert(3)
	assert.Equal(t, []int{3}, tree.Values())
}

func TestTraversalOrders(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for v := 1; v <= 7; v++ {
		tree.Insert(v)
	}

	collect := func(walk func(func(int))) []int {
		var out []int
		walk(func(v int) { out = append(out, v) })
		return out
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tree.InOrder))
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(tree.PreOrder))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(tree.PostOrder))
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, collect(tree.LevelOrder))
}

func TestCloneIsIndependent(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{5, 3, 7} {
		tree.Insert(v)
	}

	clone := tree.Clone()
	clone.Insert(9)
	clone.Remove(3)
	tree.Insert(1)

	assert.Equal(t, []int{1, 3, 5, 7}, tree.Values())
	assert.Equal(t, []int{5, 7, 9}, clone.Values())
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, 3, clone.Len())
	assert.NoError(t, clone.Check())
}

func TestMoveEmptiesSource(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{5, 3, 7} {
		tree.Insert(v)
	}

	moved := tree.Move()

	assert.Equal(t, []int{3, 5, 7}, moved.Values())
	assert.Equal(t, 3, moved.Len())
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())

	// the moved-from tree keeps working
	tree.Insert(11)
	assert.Equal(t, []int{11}, tree.Values())
	assert.Equal(t, []int{3, 5, 7}, moved.Values())
}

func TestCustomCompare(t *testing.T) {
	type point struct{ x, y int }
	tree := avl.NewOrderedFunc(func(a, b point) int {
		if a.x != b.x {
			return a.x - b.x
		}
		return a.y - b.y
	})
	tree.Insert(point{1, 2})
	tree.Insert(point{3, 4})
	tree.Insert(point{1, 1})

	assert.True(t, tree.Contains(point{1, 2}))
	assert.False(t, tree.Contains(point{2, 2}))
	assert.Equal(t, []point{{1, 1}, {1, 2}, {3, 4}}, tree.Values())
}

func TestFprint(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{1, 2, 3} {
		tree.Insert(v)
	}

	var sb strings.Builder
	depth := tree.Fprint(&sb)

	expected := "       /------+ 3 +0\n" +
		"|------+ 2 +0\n" +
		"       \\------+ 1 +0\n"
	assert.Equal(t, 2, depth)
	assert.Equal(t, expected, sb.String())
}
