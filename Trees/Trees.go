package Trees

import "errors"

// MaxHeap represents a max priority queue implemented using a balanced tree.
// Receivers that have an error as the last return value report an empty tree
// with *EmptyTreeError, in which case the other return value is the zero value
// of T and should not be used.
// Duplicated values are allowed; removing the maximum removes exactly one
// occurrence of it.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
// Implementations are not safe for concurrent use, see Queues.PriorityQueue.
type MaxHeap[T any] interface {
	//Insert v to the tree. Never fails.
	Insert(v T)
	//Peek the maximum element of the tree.
	Peek() (T, error)
	//RemoveMax removes one occurrence of the maximum element.
	RemoveMax() error
	//Pop removes one occurrence of the maximum element and returns it.
	Pop() (T, error)
	//Empty returns whether the tree holds no elements.
	Empty() bool
	//Size of the tree.
	Size() uint
	//Height of the tree, 0 if it is empty.
	Height() int
	//Clear the tree.
	Clear()
	//Corrupt returns whether the tree has corrupt structures: a value out of
	//order, a wrong cached height, or a node whose children differ in height
	//by more than 1.
	Corrupt() bool
}

// EmptyTreeError is returned when reading or removing the maximum of an empty tree.
type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: no maximum."
}

// IsEmptyTree reports whether err is, or wraps, an *EmptyTreeError.
func IsEmptyTree(err error) bool {
	var e *EmptyTreeError
	return errors.As(err, &e)
}
