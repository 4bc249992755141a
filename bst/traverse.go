package bst

// Walk visits the nodes of the tree in order (left subtree, node, right subtree),
// i.e. in ascending key order. visit receives each node together with its level,
// which is 0 for the root. If visit returns false, the walk stops.
//
// The tree must not be modified during a walk.
func (t *Tree) Walk(visit func(n *Node, level int) bool) {
	type frame struct {
		node  *Node
		level int
	}
	var stack []frame // explicit stack, as degenerated trees may be as deep as they are long
	n, level := t.root, 0
	for n != nil || len(stack) > 0 {
		for ; n != nil; n, level = n.left, level+1 {
			stack = append(stack, frame{node: n, level: level})
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(top.node, top.level) {
			return
		}
		n, level = top.node.right, top.level+1
	}
}

// InOrder returns the keys of the tree in ascending order.
func (t *Tree) InOrder() []int {
	keys := make([]int, 0, t.size)
	t.Walk(func(n *Node, _ int) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Nodes returns the nodes of the tree in ascending key order. Clients may use this
// to find out which of the nodes they have been handed earlier are still live.
func (t *Tree) Nodes() []*Node {
	nodes := make([]*Node, 0, t.size)
	t.Walk(func(n *Node, _ int) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Depth returns the height of the tree: 0 for an empty tree, otherwise the number of
// nodes on the longest path from the root to a leaf.
func (t *Tree) Depth() int {
	depth := 0
	t.Walk(func(n *Node, level int) bool {
		if n.IsLeaf() && level+1 > depth {
			depth = level + 1
		}
		return true
	})
	return depth
}

// --- Shape -----------------------------------------------------------------

// Side tells how a node is attached to its parent.
type Side int8

// Nodes are either the root, or a left or right child.
const (
	Root Side = iota
	LeftChild
	RightChild
)

func (s Side) String() string {
	switch s {
	case LeftChild:
		return "left"
	case RightChild:
		return "right"
	}
	return "root"
}

// Link describes the position of a single key within the tree. Parent is
// meaningless for Side == Root.
type Link struct {
	Key    int
	Parent int
	Side   Side
	Level  int
}

// Shape returns the structure of the tree as a list of links, in ascending key order.
// Other than Nodes, the result does not share anything with the tree.
func (t *Tree) Shape() []Link {
	links := make([]Link, 0, t.size)
	t.Walk(func(n *Node, level int) bool {
		l := Link{Key: n.key, Level: level}
		switch {
		case n.IsLeftChild():
			l.Parent, l.Side = n.parent.key, LeftChild
		case n.IsRightChild():
			l.Parent, l.Side = n.parent.key, RightChild
		}
		links = append(links, l)
		return true
	})
	return links
}
