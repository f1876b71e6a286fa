package Trees

import "iter"

// Collection is the bookkeeping shared by containers: size, emptiness,
// bulk insertion and a printable form.
type Collection[T any] interface {
	//Len is the number of items held.
	Len() int
	IsEmpty() bool
	//AddAll adds the items in order.
	AddAll(vs ...T)
	//Clear removes every item.
	Clear()
	String() string
}

// Tree represents an ordered collection implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	Collection[T]
	//Add v to the Tree. Items equal to an existing one are kept as well.
	Add(v T)
	//Remove one item equal to v and return it. Returns an error matching
	//ErrNotFound if there is none, in which case the Tree is unchanged.
	Remove(v T) (T, error)
	//Find the stored item equal to v.
	Find(v T) (T, bool)
	//Contains an item equal to v.
	Contains(v T) bool
	//Replace the stored item equal to old with new and return the old one.
	//The caller must make sure new sorts to the same position.
	Replace(old, new T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RangeFind returns the elements in [low, high] in ascending order.
	RangeFind(low, high T) []T
	//Height is the number of edges on the longest root to leaf path, 0 if empty.
	Height() int
	//IsBalanced reports whether Height() < 2*log2(n+1)-1 for n elements.
	IsBalanced() bool
	//Rebalance rebuilds the tree to minimal height.
	Rebalance()
	//InOrder gives the elements in ascending order.
	InOrder() iter.Seq[T]
	//All gives the elements in pre-order.
	All() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the order of the tree.
	Corrupt() bool
}
