package track

import (
	"sync"
	"testing"

	"github.com/npillmayer/ordtree/bst"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	label string
}

func TestTrackerTrackAndUntrack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree.track")
	defer teardown()
	//
	tree := bst.New()
	tr := New[*item]()
	n := tree.Insert(5).Node()
	tr.Track(n, &item{"five"})
	tr.Track(nil, &item{"ignored"})
	require.Equal(t, 1, tr.Len())
	it, ok := tr.Item(n)
	require.True(t, ok)
	assert.Equal(t, "five", it.label)
	it, ok = tr.Untrack(n)
	assert.True(t, ok)
	assert.Equal(t, "five", it.label)
	assert.Equal(t, 0, tr.Len())
	_, ok = tr.Untrack(n)
	assert.False(t, ok)
}

func TestTrackerPruneAfterDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree.track")
	defer teardown()
	//
	tree := bst.New()
	tr := New[int]()
	for _, k := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13} {
		ins := tree.Insert(k)
		tr.Track(ins.Node(), k*100)
	}
	assert.Empty(t, tr.Prune(tree))
	tree.Delete(3) // two children, successor 4 moves but stays live
	tree.Delete(14)
	pruned := tr.Prune(tree)
	assert.Equal(t, []int{300, 1400}, pruned)
	assert.Equal(t, tree.Len(), tr.Len())
	for _, n := range tree.Nodes() {
		it, ok := tr.Item(n)
		assert.True(t, ok, "node %v lost its item", n)
		assert.Equal(t, n.Key()*100, it)
	}
}

func TestTrackerIdentityNotKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree.track")
	defer teardown()
	//
	tree := bst.New()
	tr := New[string]()
	old := tree.Insert(5).Node()
	tr.Track(old, "old")
	tree.Delete(5)
	renewed := tree.Insert(5).Node()
	_, ok := tr.Item(renewed)
	assert.False(t, ok, "re-inserted key must not inherit the item of the deleted node")
	assert.Equal(t, []string{"old"}, tr.Prune(tree))
	assert.Equal(t, 0, tr.Len())
}

func TestTrackerReinsertedKeyKeepsOldItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree.track")
	defer teardown()
	//
	tree := bst.New()
	tr := New[string]()
	tree.Insert(8)
	old := tree.Insert(5).Node()
	tr.Track(old, "old")
	tree.Delete(5)
	renewed := tree.Insert(5).Node()
	tr.Track(renewed, "new")
	require.Equal(t, 2, tr.Len())
	it, ok := tr.Item(old)
	require.True(t, ok)
	assert.Equal(t, "old", it)
	it, ok = tr.Item(renewed)
	require.True(t, ok)
	assert.Equal(t, "new", it)
	assert.Equal(t, []string{"old"}, tr.Prune(tree))
	assert.Equal(t, 1, tr.Len())
	it, ok = tr.Item(renewed)
	assert.True(t, ok)
	assert.Equal(t, "new", it)
	assert.Empty(t, tr.Prune(tree))
}

func TestTrackerRetrackReplacesItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree.track")
	defer teardown()
	//
	tree := bst.New()
	tr := New[string]()
	n := tree.Insert(5).Node()
	tr.Track(n, "first")
	tr.Track(n, "second")
	assert.Equal(t, 1, tr.Len())
	it, _ := tr.Item(n)
	assert.Equal(t, "second", it)
	// untracking one node of a key leaves the other one alone
	tree.Delete(5)
	renewed := tree.Insert(5).Node()
	tr.Track(renewed, "renewed")
	it, ok := tr.Untrack(n)
	assert.True(t, ok)
	assert.Equal(t, "second", it)
	it, ok = tr.Item(renewed)
	assert.True(t, ok)
	assert.Equal(t, "renewed", it)
	assert.Equal(t, 1, tr.Len())
}

func TestTrackerConcurrentTrackAndPrune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree.track")
	defer teardown()
	//
	tree := bst.New()
	var nodes []*bst.Node
	for k := 0; k < 200; k++ {
		nodes = append(nodes, tree.Insert(k).Node())
	}
	tr := New[int]()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(nodes); i += 4 {
				tr.Track(nodes[i], i)
				if i%10 == 0 {
					tr.Prune(tree)
				}
			}
		}(w)
	}
	wg.Wait()
	assert.Empty(t, tr.Prune(tree), "live nodes must never be pruned")
	assert.Equal(t, len(nodes), tr.Len())
	for i, n := range nodes {
		it, ok := tr.Item(n)
		assert.True(t, ok)
		assert.Equal(t, i, it)
	}
}

func TestTrackerPruneAfterClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordtree.track")
	defer teardown()
	//
	tree := bst.New()
	tr := New[int]()
	for k := 0; k < 10; k++ {
		tr.Track(tree.Insert(k).Node(), k)
	}
	tree.Clear()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, tr.Prune(tree))
}
