/*
Package track lets clients attach their own items to the nodes of a binary search tree
and get rid of items whose nodes have gone.

A typical client is a renderer which keeps a graphical item per tree node. After a
deletion it calls Prune to collect the items of every node which is no longer part
of the tree, e.g. to remove them from a scene.

Nodes are identified by identity, not by key: if a key is deleted and inserted again,
the new node is a different node, and the item of the old one will be pruned.
*/
package track

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordtree.track'.
func tracer() tracing.Trace {
	return tracing.Select("ordtree.track")
}
