package Trees

import (
	"github.com/emirpasic/gods/utils"
)

// CMaxTree is the version of MaxTree for types ordered by a user-defined less
// than function. All methods are implemented exactly as MaxTree except for
// using lt for comparisons. lt must be a strict weak ordering of T.
type CMaxTree[T any] struct {
	base[T]
	lt func(a, b T) bool
}

// NewC is the CMaxTree equivalence of New. It panics if lessThan is nil.
func NewC[T any](lessThan func(a, b T) bool) *CMaxTree[T] {
	if lessThan == nil {
		panic("Trees: nil lessThan")
	}
	return &CMaxTree[T]{lt: lessThan}
}

// NewWith returns an empty CMaxTree ordered by a gods comparator, which returns
// a negative number when a<b, zero when a==b and a positive number when a>b.
// Comparator arguments will always be of type T.
func NewWith[T any](comparator utils.Comparator) *CMaxTree[T] {
	if comparator == nil {
		panic("Trees: nil comparator")
	}
	return NewC(func(a, b T) bool { return comparator(a, b) < 0 })
}

// FromC is the CMaxTree equivalence of From.
func FromC[T any](lessThan func(a, b T) bool, vs ...T) *CMaxTree[T] {
	t := NewC(lessThan)
	for _, v := range vs {
		t.Insert(v)
	}
	return t
}

func (u *CMaxTree[T]) insert(curPtr *nodePtr[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T]{v: v, h: 1}
	} else {
		if u.lt(cur.v, v) {
			u.insert(&cur.l, v)
		} else {
			u.insert(&cur.r, v)
		}
		rebalance(curPtr)
	}
}

// Insert [MaxHeap.Insert]. Recursive.
func (u *CMaxTree[T]) Insert(v T) {
	u.insert(&u.root, v)
	u.sz++
}

// Corrupt [MaxHeap.Corrupt]. Recursive.
func (u *CMaxTree[T]) Corrupt() bool {
	return u.isCorrupt(func(a, b T) bool { return !u.lt(a, b) })
}
