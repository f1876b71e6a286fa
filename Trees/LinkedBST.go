package Trees

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*LinkedBST[int, uint])(nil)

// LinkedBST is a binary search tree of T. S is the index type of the node arena
// and bounds the number of nodes the tree can hold.
// Left descendants compare less than a node, right descendants compare greater or equal.
// The zero value is meaningless, use New or NewFunc.
type LinkedBST[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp func(T, T) int
}

// New LinkedBST ordered by the natural order of T. hint preallocates room for that many nodes.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *LinkedBST[T, S] {
	return NewFunc[T, S](hint, cmp.Compare[T])
}

// NewFunc returns a LinkedBST ordered by cmp, which must be a total order.
func NewFunc[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *LinkedBST[T, S] {
	if cmp == nil {
		panic("Trees: nil comparison function")
	}
	return &LinkedBST[T, S]{makeBase[T, S](hint), cmp}
}

// From builds a tree by adding the items of src in order.
// A sorted src gives a degenerate tree; call Rebalance afterwards if that matters.
func From[T cmp.Ordered, S constraints.Unsigned](src []T) *LinkedBST[T, S] {
	return FromFunc[T, S](src, cmp.Compare[T])
}

// FromFunc is From with a custom order.
func FromFunc[T any, S constraints.Unsigned](src []T, cmp func(T, T) int) *LinkedBST[T, S] {
	u := NewFunc[T, S](S(len(src)), cmp)
	u.AddAll(src...)
	return u
}

func (u *LinkedBST[T, S]) Size() S {
	return u.size
}

func (u *LinkedBST[T, S]) Len() int {
	return int(u.size)
}

func (u *LinkedBST[T, S]) IsEmpty() bool {
	return u.size == 0
}

// Clear the tree. The arena is kept for later insertions.
func (u *LinkedBST[T, S]) Clear() {
	u.clrIfs()
}

func (u *LinkedBST[T, S]) AddAll(vs ...T) {
	for _, v := range vs {
		u.Add(v)
	}
}

// Add v as a new leaf. Never fails; an item equal to an existing one goes to its right.
// Time: O(h)
func (u *LinkedBST[T, S]) Add(v T) {
	n := u.newNode(v)
	if u.root == 0 {
		u.root, u.size = n, 1
		return
	}
	var parent S
	for curI := u.root; curI != 0; {
		parent = curI
		if u.cmp(v, u.vs[curI]) < 0 {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	if u.cmp(v, u.vs[parent]) < 0 {
		u.ifs[parent].l = n
	} else {
		u.ifs[parent].r = n
	}
	u.size++
}

// Remove the first node equal to v found from the root and return its item.
// A node with two children takes over the maximum of its left subtree, whose
// node is unlinked instead.
// Time: O(h)
func (u *LinkedBST[T, S]) Remove(v T) (T, error) {
	//pre stands above the root so that removing the root relinks like any other node.
	pre := info[S]{l: u.root}
	parent, left := &pre, true
	curI := u.root
	for curI != 0 {
		c := u.cmp(v, u.vs[curI])
		if c == 0 {
			break
		}
		parent = &u.ifs[curI]
		if left = c < 0; left {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	if curI == 0 {
		tracer().Debugf("remove: %v not in tree of size %d", v, u.size)
		return *new(T), &NotFoundError{v}
	}
	removed := u.vs[curI]
	if cur := u.ifs[curI]; cur.l != 0 && cur.r != 0 {
		u.liftLeft(curI)
	} else {
		child := cur.l
		if child == 0 {
			child = cur.r
		}
		if left {
			parent.l = child
		} else {
			parent.r = child
		}
		u.addFree(curI)
	}
	if u.size--; u.size == 0 {
		u.root = 0
	} else {
		u.root = pre.l
	}
	return removed, nil
}

// liftLeft replaces the item of topI with the maximum of its left subtree and unlinks that maximum's node.
// topI must have a left child.
func (u *LinkedBST[T, S]) liftLeft(topI S) {
	parentI, curI := topI, u.ifs[topI].l
	for u.ifs[curI].r != 0 {
		parentI, curI = curI, u.ifs[curI].r
	}
	u.vs[topI] = u.vs[curI]
	if parentI == topI {
		u.ifs[topI].l = u.ifs[curI].l
	} else {
		u.ifs[parentI].r = u.ifs[curI].l
	}
	u.addFree(curI)
}

// find returns the index of the first node equal to v, 0 if none.
func (u *LinkedBST[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, u.vs[curI]); c < 0 {
			curI = u.ifs[curI].l
		} else if c > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Find the stored item equal to v.
// Time: O(h)
func (u *LinkedBST[T, S]) Find(v T) (T, bool) {
	curI := u.find(v)
	return u.vs[curI], curI != 0
}

func (u *LinkedBST[T, S]) Contains(v T) bool {
	return u.find(v) != 0
}

// Replace overwrites the stored item equal to old with new and returns the previous item.
// The order isn't checked: if new doesn't sort to the same position the tree is corrupt.
func (u *LinkedBST[T, S]) Replace(old, new T) (T, bool) {
	curI := u.find(old)
	if curI == 0 {
		return u.vs[0], false
	}
	prev := u.vs[curI]
	u.vs[curI] = new
	return prev, true
}

// Clone returns an independent copy with the same shape.
func (u *LinkedBST[T, S]) Clone() *LinkedBST[T, S] {
	c := *u
	c.ifs, c.vs = slices.Clone(u.ifs), slices.Clone(u.vs)
	return &c
}

// Equal reports whether both trees hold pairwise equal items in ascending order, regardless of shape.
func (u *LinkedBST[T, S]) Equal(o *LinkedBST[T, S]) bool {
	if u == o {
		return true
	}
	if o == nil || u.size != o.size {
		return false
	}
	return slices.EqualFunc(u.Values(), o.Values(), func(a, b T) bool {
		return u.cmp(a, b) == 0
	})
}

// String draws the tree rotated 90 degrees counterclockwise, one "| " per level.
// Implemented recursively.
func (u *LinkedBST[T, S]) String() string {
	var sb strings.Builder
	var recurse func(S, int)
	recurse = func(curI S, level int) {
		if curI == 0 {
			return
		}
		recurse(u.ifs[curI].r, level+1)
		sb.WriteString(strings.Repeat("| ", level))
		fmt.Fprintln(&sb, u.vs[curI])
		recurse(u.ifs[curI].l, level+1)
	}
	recurse(u.root, 0)
	return sb.String()
}
