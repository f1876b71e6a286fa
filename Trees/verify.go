package Trees

// Corrupt reports whether the tree violates the search tree order, for
// example after a Replace that moved an item out of its place, or whether the
// number of reachable nodes differs from Size.
// This is to be distinguished from whether the tree is balanced or not.
// Time: O(n)
func (u *LinkedBST[T, S]) Corrupt() bool {
	//items under i must be >=vs[lo] and <=vs[hi]; 0 means unbounded.
	//Remove lifts the rightmost copy of the left maximum, so an equal item may stay on the left.
	type frame struct{ i, lo, hi S }
	var st []frame
	if u.root != 0 {
		st = append(st, frame{u.root, 0, 0})
	}
	n := 0
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if n++; n > int(u.size) {
			return true
		}
		v := u.vs[f.i]
		if f.lo != 0 && u.cmp(v, u.vs[f.lo]) < 0 || f.hi != 0 && u.cmp(v, u.vs[f.hi]) > 0 {
			return true
		}
		cur := u.ifs[f.i]
		if cur.l != 0 {
			st = append(st, frame{cur.l, f.lo, f.i})
		}
		if cur.r != 0 {
			st = append(st, frame{cur.r, f.i, f.hi})
		}
	}
	return n != int(u.size)
}
