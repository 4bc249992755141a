package bst

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is reported (via Insertion.Err) if a key is inserted twice.
var ErrDuplicateKey = errors.New("key already present in tree")

// ErrKeyNotFound is returned by operations of Guarded for absent keys.
var ErrKeyNotFound = errors.New("key not found in tree")

// Tree is a binary search tree of unique integer keys. The zero value is an
// empty tree ready to use:
//
//     var tree bst.Tree
//     tree.Insert(8)
//     path, node := tree.Search(8)
//
type Tree struct {
	root *Node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.size
}

// IsEmpty is true if the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Clear resets the tree to empty. Nodes previously handed out are no longer part
// of the tree.
func (t *Tree) Clear() {
	tracer().Debugf("clear tree of %d nodes", t.size)
	t.root = nil
	t.size = 0
}

// --- Insert & Search -------------------------------------------------------

// Insert adds key as a new leaf. If key is already present, the tree is left
// unchanged and the result reports the existing node as conflicting.
func (t *Tree) Insert(key int) Insertion {
	var parent *Node
	var n *Node = t.root // walking nodes, start at the top
	for n != nil {
		parent = n
		if key == n.key {
			tracer().Debugf("insert: key %d already present", key)
			return alreadyExists(n)
		}
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	z := newNode(key, parent)
	switch {
	case parent == nil: // virgin tree
		t.root = z
	case key < parent.key:
		parent.left = z
	default:
		parent.right = z
	}
	t.size++
	tracer().Debugf("insert: key %d linked under %v", key, parent)
	return inserted(z, parent)
}

// Search looks for key and returns the trail of visited nodes, root first, together
// with the node holding key. If key is absent, the node is nil and path ends at the
// last node compared. The path is empty only for an empty tree.
func (t *Tree) Search(key int) (Path, *Node) {
	var path Path
	n := t.root
	for n != nil {
		path = append(path, n)
		if key == n.key {
			tracer().Debugf("search: key %d found, path = %s", key, path)
			return path, n
		}
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	tracer().Debugf("search: key %d not found, path = %s", key, path)
	return path, nil
}

// --- Delete ----------------------------------------------------------------

// Delete removes key from the tree and returns the node which held it. The returned
// node is detached: it has neither parent nor children. If key is not in the tree,
// Delete returns nil and leaves the tree unchanged.
func (t *Tree) Delete(key int) *Node {
	_, z := t.Search(key)
	if z == nil {
		return nil
	}
	switch {
	case z.left == nil:
		t.transplant(z, z.right)
	case z.right == nil:
		t.transplant(z, z.left)
	default: // two children: the successor takes z's place
		y := Minimum(z.right)
		tracer().Debugf("delete: successor of %v is %v", z, y)
		if y.parent != z {
			t.transplant(y, y.right) // y has no left child
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
	}
	t.size--
	tracer().Debugf("delete: key %d removed, %d keys left", key, t.size)
	return z.detach()
}

// transplant replaces the subtree rooted at u by the subtree rooted at v in u's parent
// (or at the root). v may be nil. u's own links are left untouched.
func (t *Tree) transplant(u, v *Node) {
	assertThat(u != nil, "attempt to transplant into empty subtree")
	assertThat(u != v, "attempt to transplant node %v onto itself", u)
	switch {
	case u.parent == nil:
		assertThat(t.root == u, "parentless node %v is not the root", u)
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
