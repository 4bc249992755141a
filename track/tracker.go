package track

import (
	"sort"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/npillmayer/ordtree/bst"
)

type entry[V any] struct {
	node *bst.Node
	item V
}

// Tracker maps tree nodes to client items of type V.
//
// Tracker is safe for concurrent use, but Prune must not run concurrently with
// modifications of the tree it inspects.
type Tracker[V any] struct {
	mx      sync.Mutex                   // serializes writers; readers go to the map directly
	entries *haxmap.Map[int, []entry[V]] // per key, in order of tracking
	count   int
}

// New creates an empty tracker.
func New[V any]() *Tracker[V] {
	return &Tracker[V]{entries: haxmap.New[int, []entry[V]]()}
}

// Track associates item with node n, replacing any item tracked for n itself.
// Items of other nodes carrying the same key stay tracked until they are pruned
// or untracked.
func (tr *Tracker[V]) Track(n *bst.Node, item V) {
	if n == nil {
		return
	}
	tr.mx.Lock()
	defer tr.mx.Unlock()
	list, _ := tr.entries.Get(n.Key())
	updated := make([]entry[V], 0, len(list)+1)
	replaced := false
	for _, e := range list {
		if e.node == n {
			e.item, replaced = item, true
		}
		updated = append(updated, e)
	}
	if !replaced {
		updated = append(updated, entry[V]{node: n, item: item})
		tr.count++
	}
	tr.entries.Set(n.Key(), updated)
}

// Item returns the item tracked for n.
func (tr *Tracker[V]) Item(n *bst.Node) (V, bool) {
	if n != nil {
		list, _ := tr.entries.Get(n.Key())
		for _, e := range list {
			if e.node == n {
				return e.item, true
			}
		}
	}
	var none V
	return none, false
}

// Untrack removes n from the tracker and returns its item.
func (tr *Tracker[V]) Untrack(n *bst.Node) (V, bool) {
	var none V
	if n == nil {
		return none, false
	}
	tr.mx.Lock()
	defer tr.mx.Unlock()
	list, _ := tr.entries.Get(n.Key())
	for i, e := range list {
		if e.node == n {
			tr.store(n.Key(), append(append([]entry[V]{}, list[:i]...), list[i+1:]...))
			tr.count--
			return e.item, true
		}
	}
	return none, false
}

// Len returns the number of tracked nodes.
func (tr *Tracker[V]) Len() int {
	tr.mx.Lock()
	defer tr.mx.Unlock()
	return tr.count
}

// Prune untracks every node which is not part of tree t any more and returns
// their items, ordered by key. Items for the same key are returned in the order
// they have been tracked.
func (tr *Tracker[V]) Prune(t *bst.Tree) []V {
	live := make(map[*bst.Node]struct{}, t.Len())
	for _, n := range t.Nodes() {
		live[n] = struct{}{}
	}
	tr.mx.Lock()
	defer tr.mx.Unlock()
	var keys []int
	tr.entries.ForEach(func(key int, list []entry[V]) bool {
		for _, e := range list {
			if _, ok := live[e.node]; !ok {
				keys = append(keys, key)
				break
			}
		}
		return true
	})
	sort.Ints(keys)
	var items []V
	for _, key := range keys {
		list, _ := tr.entries.Get(key)
		kept := make([]entry[V], 0, len(list))
		for _, e := range list {
			if _, ok := live[e.node]; ok {
				kept = append(kept, e)
			} else {
				items = append(items, e.item)
				tr.count--
			}
		}
		tr.store(key, kept)
	}
	tracer().Debugf("pruned %d orphaned nodes, %d left", len(items), tr.count)
	if items == nil {
		items = []V{}
	}
	return items
}

// store replaces the entries for key, dropping key altogether if list is empty.
// Callers must hold the lock.
func (tr *Tracker[V]) store(key int, list []entry[V]) {
	if len(list) == 0 {
		tr.entries.Del(key)
		return
	}
	tr.entries.Set(key, list)
}
