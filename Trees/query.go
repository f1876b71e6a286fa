package Trees

// Minimum item, the leftmost one.
func (u *LinkedBST[T, S]) Minimum() (T, bool) {
	curI := u.minNode()
	return u.vs[curI], curI != 0
}

// Maximum item, the rightmost one.
func (u *LinkedBST[T, S]) Maximum() (T, bool) {
	curI := u.maxNode()
	return u.vs[curI], curI != 0
}

// Successor is the smallest item greater than v. v needn't be in the tree.
// Time: O(h)
func (u *LinkedBST[T, S]) Successor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(v, u.vs[curI]) < 0 {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Predecessor is the greatest item less than v. v needn't be in the tree.
// Time: O(h)
func (u *LinkedBST[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(v, u.vs[curI]) > 0 {
			p = curI
			curI = u.ifs[curI].r
		} else {
			curI = u.ifs[curI].l
		}
	}
	return u.vs[p], p != 0
}

// RangeFind returns the items x with low<=x<=high in ascending order.
// Subtrees that can't hold such items aren't visited. low>high gives nothing.
// Time: O(h+k) for k results
func (u *LinkedBST[T, S]) RangeFind(low, high T) []T {
	var res []T
	var st []S
	for curI := u.root; curI != 0 || len(st) > 0; {
		for curI != 0 {
			st = append(st, curI)
			if u.cmp(u.vs[curI], low) >= 0 {
				curI = u.ifs[curI].l
			} else {
				curI = 0
			}
		}
		curI = st[len(st)-1]
		st = st[:len(st)-1]
		v := u.vs[curI]
		if u.cmp(low, v) <= 0 && u.cmp(v, high) <= 0 {
			res = append(res, v)
		}
		if u.cmp(v, high) <= 0 {
			curI = u.ifs[curI].r
		} else {
			curI = 0
		}
	}
	return res
}
