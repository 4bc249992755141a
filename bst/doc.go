/*
Package bst implements a mutable, unbalanced binary search tree over unique integer keys.

Nodes are linked to their children and hold a back-reference to their parent. Keys are
kept in binary search tree order: every key in the left subtree of a node is smaller
than the node's key, every key in the right subtree is larger. Duplicate keys are
rejected on insert.

Deletion follows the classic textbook strategy (see Cormen et al., “Introduction to
Algorithms”, ch. 12): a node with at most one child is replaced by that child, a node
with two children is replaced by its in-order successor, the leftmost node of its
right subtree. Both cases are expressed in terms of a single primitive, transplant,
which replaces one subtree by another in the parent's linkage.

The tree does no balancing. Its depth depends on the order of insertions and will
degrade to a linear list for sorted input.

A Tree is not safe for concurrent use. Clients driving a tree from more than one
goroutine should use Guarded, which serializes calls and hands out copies only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordtree.bst'.
func tracer() tracing.Trace {
	return tracing.Select("ordtree.bst")
}
