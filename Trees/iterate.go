package Trees

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bst/Queues"
)

// Iterator walks a tree in pre-order using its own stack, so any number of
// Iterators can walk the same tree at once.
// The tree must not be modified while an Iterator is in use.
type Iterator[T any, S constraints.Unsigned] struct {
	t  *base[T, S]
	st *arraystack.Stack
}

// PreOrder returns an Iterator positioned before the root.
func (u *LinkedBST[T, S]) PreOrder() *Iterator[T, S] {
	it := &Iterator[T, S]{&u.base, arraystack.New()}
	if u.root != 0 {
		it.st.Push(u.root)
	}
	return it
}

// Next item: the node itself, then its left subtree, then its right subtree.
// v is meaningful only if ok is true; once ok is false it stays false.
func (it *Iterator[T, S]) Next() (v T, ok bool) {
	top, ok := it.st.Pop()
	if !ok {
		return
	}
	curI := top.(S)
	cur := it.t.ifs[curI]
	if cur.r != 0 {
		it.st.Push(cur.r)
	}
	if cur.l != 0 {
		it.st.Push(cur.l)
	}
	return it.t.vs[curI], true
}

// All is the default iteration order of the tree, pre-order.
func (u *LinkedBST[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := u.PreOrder(); ; {
			if v, ok := it.Next(); !ok || !yield(v) {
				return
			}
		}
	}
}

// InOrder gives the items in ascending order. Every use walks the tree again.
func (u *LinkedBST[T, S]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.inOrder(func(curI S) bool {
			return yield(u.vs[curI])
		})
	}
}

// Values returns the items in ascending order.
func (u *LinkedBST[T, S]) Values() []T {
	res := make([]T, 0, u.size)
	u.inOrder(func(curI S) bool {
		res = append(res, u.vs[curI])
		return true
	})
	return res
}

// PostOrder gives both subtrees of a node, left first, before the node.
func (u *LinkedBST[T, S]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var st []S
		var last S
		for curI := u.root; curI != 0 || len(st) > 0; {
			if curI != 0 {
				st = append(st, curI)
				curI = u.ifs[curI].l
				continue
			}
			top := st[len(st)-1]
			if r := u.ifs[top].r; r != 0 && r != last {
				curI = r
				continue
			}
			if !yield(u.vs[top]) {
				return
			}
			last = top
			st = st[:len(st)-1]
		}
	}
}

// LevelOrder gives the items level by level from the root, left to right within a level.
func (u *LinkedBST[T, S]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == 0 {
			return
		}
		q := Queues.MakeArrayQueue[S](16)
		q.Push(u.root)
		for !q.Empty() {
			curI, _ := q.Pop()
			if !yield(u.vs[curI]) {
				return
			}
			cur := u.ifs[curI]
			if cur.l != 0 {
				q.Push(cur.l)
			}
			if cur.r != 0 {
				q.Push(cur.r)
			}
		}
	}
}
