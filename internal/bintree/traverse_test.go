package bintree

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInorder(t *testing.T) {
	testCases := []struct {
		name     string
		values   []int
		expected []int
	}{
		{name: "empty", values: nil, expected: nil},
		{name: "single", values: []int{42}, expected: []int{42}},
		{name: "root and left", values: []int{1, 2}, expected: []int{2, 1}},
		{name: "three", values: []int{1, 2, 3}, expected: []int{2, 1, 3}},
		{name: "six", values: []int{1, 2, 3, 4, 5, 6}, expected: []int{4, 2, 5, 1, 6, 3}},
		{name: "seven", values: []int{1, 2, 3, 4, 5, 6, 7}, expected: []int{4, 2, 5, 1, 6, 3, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Inorder(FromLevelOrder(tc.values))
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Inorder() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInorder_IsPermutation(t *testing.T) {
	values := []int{8, 3, 10, 1, 6, 14, 4, 7, 13}
	got := Inorder(FromLevelOrder(values))

	sortedWant := slices.Clone(values)
	slices.Sort(sortedWant)
	sortedGot := slices.Clone(got)
	slices.Sort(sortedGot)

	assert.Equal(t, sortedWant, sortedGot)
	assert.NotEqual(t, values, got, "inorder should not echo the level-order input")
}

func TestInorder_Idempotent(t *testing.T) {
	root := FromLevelOrder(sequence(15))
	first := Inorder(root)
	second := Inorder(root)
	assert.Equal(t, first, second)
	assert.Equal(t, sequence(15), LevelOrder(root), "traversal must not modify the tree")
}

func TestInorderRecursive_MatchesIterative(t *testing.T) {
	for n := 0; n <= 31; n++ {
		root := FromLevelOrder(sequence(n))

		var recursive []int
		InorderRecursive(root, func(v int) {
			recursive = append(recursive, v)
		})

		assert.Equal(t, Inorder(root), recursive, "n=%d", n)
	}
}

func TestAll_EarlyBreak(t *testing.T) {
	root := FromLevelOrder([]int{1, 2, 3, 4, 5, 6, 7})

	var got []int
	for v := range All(root) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{4, 2, 5}, got)
}

func TestAll_DeepTree(t *testing.T) {
	// A left-only chain deep enough to be uncomfortable for recursion.
	const depth = 100000
	var root *Node
	for i := range depth {
		root = &Node{Value: i, Left: root}
	}

	count := 0
	prev := -1
	for v := range All(root) {
		require.Greater(t, v, prev)
		prev = v
		count++
	}
	assert.Equal(t, depth, count)
}

func TestWriteInorder(t *testing.T) {
	testCases := []struct {
		name     string
		values   []int
		expected string
	}{
		{name: "reference", values: []int{1, 2, 3, 4, 5, 6, 7}, expected: "Inorder traversal: 4 2 5 1 6 3 7 \n"},
		{name: "single", values: []int{42}, expected: "Inorder traversal: 42 \n"},
		{name: "empty", values: []int{}, expected: "Inorder traversal: \n"},
		{name: "negative", values: []int{-1, -2}, expected: "Inorder traversal: -2 -1 \n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteInorder(&buf, "Inorder traversal: ", FromLevelOrder(tc.values))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteInorder_PropagatesWriteError(t *testing.T) {
	err := WriteInorder(failingWriter{}, "x: ", FromLevelOrder([]int{1}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
