package bst

import "math/rand"

// FreshKeys draws up to n distinct keys which are not yet present in the tree,
// in random order. Keys are taken from the range [0, max(100, 20·n)). The tree is
// not modified; clients usually insert the keys afterwards.
//
// If rnd is nil, the global source of package math/rand is used.
func (t *Tree) FreshKeys(n int, rnd *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	present := make(map[int]struct{}, t.size)
	t.Walk(func(node *Node, _ int) bool {
		present[node.key] = struct{}{}
		return true
	})
	hi := max(100, 20*n)
	candidates := make([]int, 0, hi)
	for k := 0; k < hi; k++ {
		if _, ok := present[k]; !ok {
			candidates = append(candidates, k)
		}
	}
	shuffle := rand.Shuffle
	if rnd != nil {
		shuffle = rnd.Shuffle
	}
	shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	tracer().Debugf("fresh keys: %v", candidates)
	return candidates
}
