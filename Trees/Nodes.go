package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A node in the arena: indexes of the left and right child, 0 if absent.
// The zero value is a leaf.
type info[S constraints.Unsigned] struct {
	l, r S
}

// base is the node arena. ifs[i] and vs[i] make up node i; slot 0 is the absent node and is never written.
type base[T any, S constraints.Unsigned] struct {
	root, free S //free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	size       S
	ifs        []info[S]
	vs         []T
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 1, int(hint)+1)}
}

// newNode returns the index of a fresh leaf holding v. Freed indexes are reused first.
func (u *base[T, S]) newNode(v T) S {
	if a := u.popFree(); a != 0 {
		u.ifs[a], u.vs[a] = info[S]{}, v
		return a
	}
	a := S(len(u.ifs))
	if int(a) != len(u.ifs) {
		panic(fmt.Sprintf("Trees: index type %T can't address more than %d nodes", a, len(u.ifs)-1))
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return a
}

// adds a free index
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a] = *new(T)
	u.free = a
}

// gets a free index, 0 if there is none
func (u *base[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ifs[b].l
	}
	return b
}

// clrIfs drops all nodes but keeps the allocated arena.
func (u *base[T, S]) clrIfs() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:1]
	u.root, u.free, u.size = 0, 0, 0
}

// inOrder calls f on the nodes in ascending order until f returns false.
func (u *base[T, S]) inOrder(f func(S) bool) {
	var st []S
	for curI := u.root; curI != 0 || len(st) > 0; {
		for ; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		curI = st[len(st)-1]
		st = st[:len(st)-1]
		if !f(curI) {
			return
		}
		curI = u.ifs[curI].r
	}
}

// minNode and maxNode return 0 on an empty tree.
func (u *base[T, S]) minNode() (curI S) {
	for curI = u.root; curI != 0 && u.ifs[curI].l != 0; {
		curI = u.ifs[curI].l
	}
	return
}

func (u *base[T, S]) maxNode() (curI S) {
	for curI = u.root; curI != 0 && u.ifs[curI].r != 0; {
		curI = u.ifs[curI].r
	}
	return
}
