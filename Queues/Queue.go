package Queues

import "context"

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type BlockingQueue[T any] interface {
	Queue[T]
	// WaitAndPop blocks until an item can be popped or ctx is done, in which
	// case ctx.Err() is returned.
	WaitAndPop(ctx context.Context) (T, error)
}

// EmptyQueueError is returned by Pop and Peek on an empty queue. It wraps the
// error of the underlying container, if there is one.
type EmptyQueueError struct {
	err error
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

func (e *EmptyQueueError) Unwrap() error {
	return e.err
}
