package bintree

// Node is a single vertex of a binary tree. Left and Right are nil when the
// child is absent.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// newNode creates a leaf holding v.
func newNode(v int) *Node {
	return &Node{Value: v}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Size returns the number of nodes in the tree rooted at n. A nil tree has
// size 0.
func (n *Node) Size() int {
	count := 0
	for range All(n) {
		count++
	}
	return count
}

// Height returns the number of nodes on the longest path from n down to a
// leaf. A nil tree has height 0.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	height := 0
	level := []*Node{n}
	for len(level) > 0 {
		height++
		var next []*Node
		for _, cur := range level {
			if cur.Left != nil {
				next = append(next, cur.Left)
			}
			if cur.Right != nil {
				next = append(next, cur.Right)
			}
		}
		level = next
	}
	return height
}
