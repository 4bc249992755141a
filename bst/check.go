package bst

import (
	"errors"
	"fmt"

	tp "github.com/xlab/treeprint"
)

// ErrCorrupt is wrapped by errors returned from Check.
var ErrCorrupt = errors.New("corrupt tree")

// Check verifies the structural invariants of the tree:
//
// - keys are in binary search tree order, without duplicates
// - parent and child links agree with each other
// - the root has no parent
// - the number of reachable nodes equals Len()
//
// Check returns nil for a healthy tree. Clients should not need it; it is intended
// for tests and debugging.
func (t *Tree) Check() error {
	if t.root != nil && t.root.parent != nil {
		return t.corrupt("root %v has parent %v", t.root, t.root.parent)
	}
	var err error
	var prev *Node
	count := 0
	t.Walk(func(n *Node, _ int) bool {
		count++
		if prev != nil && prev.key >= n.key {
			err = t.corrupt("keys out of order: %d before %d", prev.key, n.key)
			return false
		}
		for _, ch := range [2]*Node{n.left, n.right} {
			if ch != nil && ch.parent != n {
				err = t.corrupt("child %v of %v points to parent %v", ch, n, ch.parent)
				return false
			}
		}
		if n != t.root && !n.IsLeftChild() && !n.IsRightChild() {
			err = t.corrupt("%v is not a child of its parent %v", n, n.parent)
			return false
		}
		prev = n
		return true
	})
	if err == nil && count != t.size {
		err = t.corrupt("tree has %d reachable nodes, but size %d", count, t.size)
	}
	return err
}

func (t *Tree) corrupt(msg string, args ...interface{}) error {
	err := fmt.Errorf("%w: "+msg, append([]interface{}{ErrCorrupt}, args...)...)
	tracer().Errorf("check: %v", err)
	return err
}

// --- Dump ------------------------------------------------------------------

// Dump returns a multi-line drawing of the tree's shape, mainly for debugging.
// Children are labeled with 'L:' or 'R:'.
func (t *Tree) Dump() string {
	header := fmt.Sprintf("\nTree(n=%d depth=%d)\n", t.size, t.Depth())
	p := tp.New()
	dump(p, t.root)
	return header + p.String() + "\n"
}

func dump(p tp.Tree, node *Node) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		p.AddNode(node.label())
		return
	}
	branch := p.AddBranch(node.label())
	dump(branch, node.left)
	dump(branch, node.right)
}
