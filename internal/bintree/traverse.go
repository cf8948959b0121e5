package bintree

import (
	"bufio"
	"io"
	"iter"
	"strconv"
)

// All returns an iterator over the values of the tree rooted at root in
// inorder. The tree must not be modified while the iterator is in use.
func All(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		cur := root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.Left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.Value) {
				return
			}
			cur = cur.Right
		}
	}
}

// Inorder returns the values of the tree rooted at root in inorder. A nil
// root yields a nil slice.
func Inorder(root *Node) []int {
	var out []int
	for v := range All(root) {
		out = append(out, v)
	}
	return out
}

// InorderRecursive calls visit for every value in inorder using plain
// recursion. Recursion depth equals the tree height.
func InorderRecursive(root *Node, visit func(int)) {
	if root == nil {
		return
	}
	InorderRecursive(root.Left, visit)
	visit(root.Value)
	InorderRecursive(root.Right, visit)
}

// WriteInorder writes label, then every value in inorder each followed by a
// single space, then a newline.
func WriteInorder(w io.Writer, label string, root *Node) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(label)
	for v := range All(root) {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
