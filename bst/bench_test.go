package bst

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Balanced trees serve as baselines. With random insertion order the expected
// depth of an unbalanced tree stays logarithmic, so numbers should be comparable.

const benchN = 100000

var benchKeys = rand.New(rand.NewSource(0)).Perm(benchN)

var sideEffect *Node

func BenchmarkInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New()
		for _, k := range benchKeys {
			tree.Insert(k)
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range benchKeys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := llrb.New()
		for _, k := range benchKeys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	tree := New()
	for _, k := range benchKeys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEffect = tree.Search(benchKeys[i%benchN])
	}
}

func BenchmarkSearchBTree(b *testing.B) {
	tree := btree.NewOrderedG[int](32)
	for _, k := range benchKeys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(benchKeys[i%benchN])
	}
}

func BenchmarkSearchLLRB(b *testing.B) {
	tree := llrb.New()
	for _, k := range benchKeys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(llrb.Int(benchKeys[i%benchN]))
	}
}

func BenchmarkDelete(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := New()
		for _, k := range benchKeys {
			tree.Insert(k)
		}
		b.StartTimer()
		for _, k := range benchKeys {
			sideEffect = tree.Delete(k)
		}
	}
}

func BenchmarkDeleteBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := btree.NewOrderedG[int](32)
		for _, k := range benchKeys {
			tree.ReplaceOrInsert(k)
		}
		b.StartTimer()
		for _, k := range benchKeys {
			tree.Delete(k)
		}
	}
}

func BenchmarkDeleteLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := llrb.New()
		for _, k := range benchKeys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		b.StartTimer()
		for _, k := range benchKeys {
			tree.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkInOrder(b *testing.B) {
	tree := New()
	for _, k := range benchKeys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.InOrder()
	}
}
