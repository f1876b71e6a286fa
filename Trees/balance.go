package Trees

import (
	"math"

	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/npillmayer/schuko/tracing"
)

// shape walks the tree level by level and returns the number of nodes and of levels.
func (u *base[T, S]) shape() (n, levels int) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](16)
	q.Push(u.root)
	for !q.Empty() {
		levels++
		for w := q.Size(); w > 0; w-- {
			curI, _ := q.Pop()
			n++
			cur := u.ifs[curI]
			if cur.l != 0 {
				q.Push(cur.l)
			}
			if cur.r != 0 {
				q.Push(cur.r)
			}
		}
	}
	return
}

// Height is the number of edges on the longest path from the root to a leaf.
// A single node has height 0, and so does the empty tree.
// Time: O(n)
func (u *LinkedBST[T, S]) Height() int {
	if _, levels := u.shape(); levels > 0 {
		return levels - 1
	}
	return 0
}

// IsBalanced reports whether the height h of the tree with n nodes satisfies
// h < 2*log2(n+1)-1. The empty tree is balanced.
// Time: O(n)
func (u *LinkedBST[T, S]) IsBalanced() bool {
	n, levels := u.shape()
	if n == 0 {
		return true
	}
	return float64(levels-1) < 2*math.Log2(float64(n+1))-1
}

// Rebalance rebuilds the tree from its sorted items, adding the median of
// every range before the two halves around it. The result has height
// ceil(log2(n+1))-1 when the items are distinct.
// Time: O(n*log(n))
func (u *LinkedBST[T, S]) Rebalance() {
	vs := u.Values()
	debug := tracer().GetTraceLevel() >= tracing.LevelDebug
	if debug {
		tracer().Debugf("rebalance: %d items, height %d", len(vs), u.Height())
	}
	u.Clear()
	//ranges [lo, hi) still to add; the right half is pushed first so the left half is added first.
	st := make([][2]int, 1, 64)
	st[0] = [2]int{0, len(vs)}
	for len(st) > 0 {
		r := st[len(st)-1]
		st = st[:len(st)-1]
		if r[0] >= r[1] {
			continue
		}
		mid := r[0] + (r[1]-r[0])/2
		u.Add(vs[mid])
		st = append(st, [2]int{mid + 1, r[1]}, [2]int{r[0], mid})
	}
	if debug {
		tracer().Debugf("rebalance: height %d", u.Height())
	}
}
