package Trees

// A node in the MaxTree or CMaxTree. Every value in l is greater than or
// equal to v, every value in r is less than or equal to v, so the maximum
// is always found by following l.
// h is the height of the subtree rooting at this node, 1 for a leaf.
// The children are owned by this node only; there is no parent pointer.
type node[T any] struct {
	v    T
	h    int
	l, r nodePtr[T]
}

// Pointer to a node. nil means the slot is empty.
type nodePtr[T any] *node[T]

// height of n, 0 if n is nil.
func height[T any](n nodePtr[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

// fix recomputes the cached height of n from its children.
func fix[T any](n nodePtr[T]) {
	if hl, hr := height(n.l), height(n.r); hl > hr {
		n.h = hl + 1
	} else {
		n.h = hr + 1
	}
}

// balance factor of n: height of left minus height of right.
func balance[T any](n nodePtr[T]) int {
	return height(n.l) - height(n.r)
}

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *nodePtr[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	fix(r)
	fix(rc)
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *nodePtr[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	fix(r)
	fix(lc)
	*n = lc
}

// rebalance recomputes the height of *curPtr and restores the balance of
// the subtree rooting at it with at most two rotations. It assumes both
// children are already balanced and differ in height by at most 2.
func rebalance[T any](curPtr *nodePtr[T]) {
	cur := *curPtr
	fix(cur)
	switch balance(cur) {
	case 2:
		if lc := cur.l; height(lc.l) < height(lc.r) {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	case -2:
		if rc := cur.r; height(rc.l) > height(rc.r) {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	}
}
