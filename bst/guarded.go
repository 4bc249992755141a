package bst

import (
	"fmt"
	"sync"
)

// Guarded wraps a tree for use by more than one goroutine. Every operation runs
// under a mutex, and results are copies, never live nodes.
//
// The zero value is an empty tree ready to use.
type Guarded struct {
	mx   sync.Mutex
	tree Tree
}

// NewGuarded creates an empty guarded tree.
func NewGuarded() *Guarded {
	return &Guarded{}
}

// Insert adds key to the tree. It returns an error wrapping ErrDuplicateKey if key
// is already present.
func (g *Guarded) Insert(key int) error {
	g.mx.Lock()
	defer g.mx.Unlock()
	return g.tree.Insert(key).Err()
}

// Search returns the keys along the search path for key, and whether key is present.
func (g *Guarded) Search(key int) ([]int, bool) {
	g.mx.Lock()
	defer g.mx.Unlock()
	path, node := g.tree.Search(key)
	return path.Keys(), node != nil
}

// Delete removes key from the tree. It returns an error wrapping ErrKeyNotFound if
// key is absent.
func (g *Guarded) Delete(key int) error {
	g.mx.Lock()
	defer g.mx.Unlock()
	if g.tree.Delete(key) == nil {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	return nil
}

// Clear resets the tree to empty.
func (g *Guarded) Clear() {
	g.mx.Lock()
	defer g.mx.Unlock()
	g.tree.Clear()
}

// Len returns the number of keys in the tree.
func (g *Guarded) Len() int {
	g.mx.Lock()
	defer g.mx.Unlock()
	return g.tree.Len()
}

// Depth returns the height of the tree.
func (g *Guarded) Depth() int {
	g.mx.Lock()
	defer g.mx.Unlock()
	return g.tree.Depth()
}

// InOrder returns a snapshot of the keys in ascending order.
func (g *Guarded) InOrder() []int {
	g.mx.Lock()
	defer g.mx.Unlock()
	return g.tree.InOrder()
}

// Shape returns a snapshot of the tree's structure.
func (g *Guarded) Shape() []Link {
	g.mx.Lock()
	defer g.mx.Unlock()
	return g.tree.Shape()
}

// Locked calls f with the wrapped tree while holding the lock. f must neither keep
// the tree nor any of its nodes beyond the call.
func (g *Guarded) Locked(f func(t *Tree)) {
	g.mx.Lock()
	defer g.mx.Unlock()
	f(&g.tree)
}
