package Trees

// base holds everything the max trees share. Only insertion depends on how
// values are compared; removal and lookup follow the l links only.
type base[T any] struct {
	root nodePtr[T]
	sz   uint
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T]) Size() uint {
	return u.sz
}

// Empty [MaxHeap.Empty]
// Time: O(1); Space: O(1)
func (u *base[T]) Empty() bool {
	return u.root == nil
}

// Height [MaxHeap.Height]
// Time: O(1); Space: O(1)
func (u *base[T]) Height() int {
	return height(u.root)
}

// Clear [MaxHeap.Clear]. The nodes are left to the garbage collector.
func (u *base[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Peek [MaxHeap.Peek]
// Time: O(D); Space: O(1)
func (u *base[T]) Peek() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{}
	}
	cur := u.root
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, nil
}

// popMax detaches the maximum node of the non-empty subtree rooting at cur
// recursively and returns it. The right subtree of the maximum takes its
// place in the parent slot. Every node on the path is rebalanced on the way
// back up.
func popMax[T any](curPtr *nodePtr[T]) nodePtr[T] {
	cur := *curPtr
	if cur.l == nil {
		*curPtr = cur.r
		cur.r = nil
		return cur
	}
	m := popMax(&cur.l)
	rebalance(curPtr)
	return m
}

// Pop [MaxHeap.Pop]. Recursive.
// Time: O(D)
func (u *base[T]) Pop() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{}
	}
	m := popMax(&u.root)
	u.sz--
	return m.v, nil
}

// RemoveMax [MaxHeap.RemoveMax]. Recursive.
// It is a wrapper for Pop.
// Time: O(D)
func (u *base[T]) RemoveMax() error {
	_, err := u.Pop()
	return err
}

// corrupt checks the subtree rooting at cur recursively and counts its nodes.
// Every value must lie within [lo, hi], a nil bound is unbounded.
// ge(a, b) must report a>=b.
func corrupt[T any](cur nodePtr[T], lo, hi *T, ge func(a, b T) bool) (uint, bool) {
	if cur == nil {
		return 0, false
	}
	if lo != nil && !ge(cur.v, *lo) || hi != nil && !ge(*hi, cur.v) {
		return 0, true
	}
	hl, hr := height(cur.l), height(cur.r)
	if d := hl - hr; d > 1 || d < -1 {
		return 0, true
	}
	if cur.h != max(hl, hr)+1 {
		return 0, true
	}
	nl, bad := corrupt(cur.l, &cur.v, hi, ge)
	if bad {
		return 0, true
	}
	nr, bad := corrupt(cur.r, lo, &cur.v, ge)
	return nl + nr + 1, bad
}

// isCorrupt is the shared body of Corrupt, it also compares the node count with sz.
func (u *base[T]) isCorrupt(ge func(a, b T) bool) bool {
	n, bad := corrupt(u.root, nil, nil, ge)
	return bad || n != u.sz
}
