/*
Package layout computes placements for drawing a binary search tree.

Placement follows the classic in-order scheme: a node's column is its index in the
in-order sequence of the tree, its row is its level (the root is in row 0). As keys
are in ascending order along the in-order sequence, no two nodes ever share a column
and every left subtree is drawn strictly to the left of its parent.

Coordinates are given in typographic device units (dimen.DU). Package layout does not
draw anything; it reads the tree's shape and hands back plain data for a renderer.
It never modifies the tree.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordtree.layout'.
func tracer() tracing.Trace {
	return tracing.Select("ordtree.layout")
}
