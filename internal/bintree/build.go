package bintree

// FromLevelOrder builds a tree by filling positions breadth-first from values.
// It returns nil for an empty slice. Every element becomes exactly one node.
func FromLevelOrder(values []int) *Node {
	if len(values) == 0 {
		return nil
	}

	root := newNode(values[0])
	queue := newQueue(len(values))
	queue.push(root)

	i := 1
	for !queue.empty() && i < len(values) {
		cur := queue.pop()

		if i < len(values) {
			cur.Left = newNode(values[i])
			queue.push(cur.Left)
			i++
		}
		if i < len(values) {
			cur.Right = newNode(values[i])
			queue.push(cur.Right)
			i++
		}
	}

	return root
}

// LevelOrder returns the values of the tree rooted at root in breadth-first
// order. For any tree built by FromLevelOrder it returns the original input.
func LevelOrder(root *Node) []int {
	if root == nil {
		return nil
	}

	var out []int
	queue := newQueue(0)
	queue.push(root)
	for !queue.empty() {
		cur := queue.pop()
		out = append(out, cur.Value)
		if cur.Left != nil {
			queue.push(cur.Left)
		}
		if cur.Right != nil {
			queue.push(cur.Right)
		}
	}
	return out
}

// queue is a FIFO of nodes awaiting processing. Popped slots are released so
// the backing array does not pin finished nodes.
type queue struct {
	items []*Node
	head  int
}

func newQueue(capacity int) *queue {
	return &queue{items: make([]*Node, 0, capacity)}
}

func (q *queue) push(n *Node) {
	q.items = append(q.items, n)
}

func (q *queue) pop() *Node {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	return n
}

func (q *queue) empty() bool {
	return q.head == len(q.items)
}
