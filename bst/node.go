package bst

import (
	"fmt"
	"strconv"
)

// Node is a tree node holding a single key.
//
// Nodes are created by Tree.Insert and owned by their tree. Clients may read a node's
// key and links, e.g. for computing a layout, but cannot change them.
type Node struct {
	key    int
	left   *Node // subtree with smaller keys
	right  *Node // subtree with larger keys
	parent *Node // back-reference, nil for the root
}

func newNode(key int, parent *Node) *Node {
	return &Node{key: key, parent: parent}
}

// Key returns the key stored in n.
func (n *Node) Key() int {
	return n.key
}

// Left returns the left child of n or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent node of n, or nil for the root of a tree.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// IsLeftChild is true if n hangs to the left of its parent.
func (n *Node) IsLeftChild() bool {
	return n != nil && n.parent != nil && n.parent.left == n
}

// IsRightChild is true if n hangs to the right of its parent.
func (n *Node) IsRightChild() bool {
	return n != nil && n.parent != nil && n.parent.right == n
}

// IsLeaf is true if n has no children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node) String() string {
	if n == nil {
		return "(nil)"
	}
	return fmt.Sprintf("(Node %d)", n.key)
}

// label is used for tree dumps.
func (n *Node) label() string {
	s := strconv.Itoa(n.key)
	switch {
	case n.IsLeftChild():
		return "L:" + s
	case n.IsRightChild():
		return "R:" + s
	}
	return s
}

// detach clears all links of a node which has been taken out of its tree.
func (n *Node) detach() *Node {
	n.left, n.right, n.parent = nil, nil, nil
	return n
}

// Minimum returns the leftmost node of the subtree rooted at start, i.e. the node
// with the smallest key. For an empty subtree (start == nil) Minimum returns nil.
func Minimum(start *Node) *Node {
	if start == nil {
		return nil
	}
	n := start
	for n.left != nil {
		n = n.left
	}
	return n
}
