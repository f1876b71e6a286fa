package main

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/g-m-twostay/go-bst/Trees"
)

type result struct {
	Name    string
	Elapsed time.Duration
	Ops     int
	Hits    int
	Extra   string
}

func (r result) String() string {
	s := fmt.Sprintf("%-36s %12v  (%d lookups, %d hits)", r.Name, r.Elapsed, r.Ops, r.Hits)
	if r.Extra != "" {
		s += " " + r.Extra
	}
	return s
}

type lookupFn func(string) bool

// timeLookups looks up n words picked at random from words.
func timeLookups(name string, words []string, n int, rng *rand.Rand, find lookupFn) result {
	r := result{Name: name, Ops: n}
	start := time.Now()
	for range n {
		if find(words[rng.Intn(len(words))]) {
			r.Hits++
		}
	}
	r.Elapsed = time.Since(start)
	return r
}

func shape(tree *Trees.LinkedBST[string, uint32]) string {
	return fmt.Sprintf("[height %d, balanced %v]", tree.Height(), tree.IsBalanced())
}

type llrbWord string

func (w llrbWord) Less(than llrb.Item) bool {
	return w < than.(llrbWord)
}

type container struct {
	name string
	find lookupFn
}

// baselines builds every comparison container from words.
func baselines(cfg config, words []string) []container {
	bt := btree.NewOrderedG[string](cfg.degree)
	lt := llrb.New()
	hx := haxmap.New[string, struct{}]()
	hm := hashmap.New[string, struct{}]()
	xm := xsync.NewMapOf[string, struct{}]()
	for _, w := range words {
		bt.ReplaceOrInsert(w)
		lt.ReplaceOrInsert(llrbWord(w))
		hx.Set(w, struct{}{})
		hm.Set(w, struct{}{})
		xm.Store(w, struct{}{})
	}
	return []container{
		{fmt.Sprintf("google/btree (degree %d)", cfg.degree), bt.Has},
		{"GoLLRB", func(w string) bool { return lt.Has(llrbWord(w)) }},
		{"haxmap", func(w string) bool { _, ok := hx.Get(w); return ok }},
		{"cornelk/hashmap", func(w string) bool { _, ok := hm.Get(w); return ok }},
		{"xsync.MapOf", func(w string) bool { _, ok := xm.Load(w); return ok }},
	}
}

// run times random lookups: a linear scan of the list, a tree built in file
// order, a tree built in random order, the same tree after Rebalance, and
// the comparison containers.
func run(cfg config, words []string) []result {
	rng := rand.New(rand.NewSource(cfg.seed))
	var res []result

	res = append(res, timeLookups("list", words, cfg.lookups, rng, func(w string) bool {
		return slices.Contains(words, w)
	}))

	ordered := Trees.From[string, uint32](words)
	r := timeLookups("BST, file order", words, cfg.degenerate, rng, ordered.Contains)
	r.Extra = shape(ordered)
	res = append(res, r)
	tracer().Debugf("file order tree: %s", r.Extra)

	shuffled := slices.Clone(words)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	tree := Trees.From[string, uint32](shuffled)
	r = timeLookups("BST, random order", words, cfg.lookups, rng, tree.Contains)
	r.Extra = shape(tree)
	res = append(res, r)

	start := time.Now()
	tree.Rebalance()
	tracer().Infof("rebalanced %d words in %v", tree.Len(), time.Since(start))
	r = timeLookups("BST, rebalanced", words, cfg.lookups, rng, tree.Contains)
	r.Extra = shape(tree)
	res = append(res, r)

	for _, c := range baselines(cfg, words) {
		res = append(res, timeLookups(c.name, words, cfg.lookups, rng, c.find))
	}
	return res
}

var sideEff bool

// benchFind measures the cost of a single lookup with the testing package. testing.Init must have been called.
func benchFind(words []string, find lookupFn) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		for i := range b.N {
			sideEff = find(words[i%len(words)])
		}
	})
}
