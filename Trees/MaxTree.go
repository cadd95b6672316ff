package Trees

import (
	"golang.org/x/exp/constraints"
)

// MaxTree is a max priority queue backed by an AVL tree. Values greater than
// a node go to its left subtree and the others to its right, so the maximum
// is the leftmost node and duplicates are allowed.
// The balance of every node is restored after both Insert and RemoveMax, so
// the height D of the tree is at most 1.44*log2(n+2) at any time.
// The zero value is an empty tree ready to use.
type MaxTree[T constraints.Ordered] struct {
	base[T]
}

// New returns an empty MaxTree.
func New[T constraints.Ordered]() *MaxTree[T] {
	return &MaxTree[T]{}
}

// From returns a MaxTree holding all of vs. It is equivalent to calling Insert
// on each element in order.
// Time: O(n*D)
func From[T constraints.Ordered](vs ...T) *MaxTree[T] {
	t := New[T]()
	for _, v := range vs {
		t.Insert(v)
	}
	return t
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference.
func (u *MaxTree[T]) insert(curPtr *nodePtr[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T]{v: v, h: 1}
	} else {
		if v > cur.v {
			u.insert(&cur.l, v)
		} else {
			u.insert(&cur.r, v)
		}
		rebalance(curPtr)
	}
}

// Insert [MaxHeap.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *MaxTree[T]) Insert(v T) {
	u.insert(&u.root, v)
	u.sz++
}

// Corrupt [MaxHeap.Corrupt]. Recursive.
// Time: O(n)
func (u *MaxTree[T]) Corrupt() bool {
	return u.isCorrupt(func(a, b T) bool { return !(a < b) })
}
