package Trees

import (
	"slices"
	"testing"

	"github.com/hashicorp/go-uuid"
)

var (
	bAddN uint32 = 100000
	bQryN uint32 = bAddN / 2
)

func BenchmarkAdd(b *testing.B) {
	for range b.N {
		tree := New[int](bAddN)
		for range bAddN {
			tree.Add(rg.Int())
		}
	}
}

// sorted input degrades the tree into a chain, so keep it short.
func BenchmarkAddSorted(b *testing.B) {
	for range b.N {
		tree := New[int](uint32(0))
		for i := range bAddN / 100 {
			tree.Add(int(i))
		}
	}
}

func create(b *testing.B) (*LinkedBST[int, uint32], []int) {
	b.Helper()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	return From[int, uint32](all), all
}

func BenchmarkRemove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

var sideEff bool

func BenchmarkFind(b *testing.B) {
	tree, all := create(b)
	m := slices.Max(all)
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			_, sideEff = tree.Find(v)
		}
		for range bAddN - bQryN {
			sideEff = tree.Contains(rg.Intn(m))
		}
	}
}

func BenchmarkFindRebalanced(b *testing.B) {
	tree, all := create(b)
	tree.Rebalance()
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			_, sideEff = tree.Find(v)
		}
	}
}

func BenchmarkRebalance(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		tree.Rebalance()
	}
}

func BenchmarkRangeFind(b *testing.B) {
	tree, all := create(b)
	slices.Sort(all)
	b.ResetTimer()
	for range b.N {
		i := rg.Intn(len(all) - 100)
		sideEff = len(tree.RangeFind(all[i], all[i+100])) == 101
	}
}

func BenchmarkAddStrings(b *testing.B) {
	keys := make([]string, bAddN/10)
	for i := range keys {
		keys[i], _ = uuid.GenerateUUID()
	}
	b.ResetTimer()
	for range b.N {
		tree := New[string](uint32(len(keys)))
		for _, k := range keys {
			tree.Add(k)
		}
	}
}
