package Queues

import (
	"context"
	"sync"

	"github.com/g-m-twostay/maxq/Trees"
	"golang.org/x/exp/constraints"
)

// PriorityQueue is a max priority queue safe for concurrent use. A single
// mutex guards the whole tree for every operation, so no goroutine ever sees
// a tree in the middle of a rotation.
type PriorityQueue[T any] struct {
	mu      sync.Mutex
	t       Trees.MaxHeap[T]
	ready   chan struct{} // closed by Push when waiters>0, then replaced.
	waiters int
}

// NewPriorityQueue returns an empty PriorityQueue backed by a Trees.MaxTree.
func NewPriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return Wrap[T](Trees.New[T]())
}

// NewPriorityQueueC returns an empty PriorityQueue backed by a Trees.CMaxTree
// ordered by lessThan.
func NewPriorityQueueC[T any](lessThan func(a, b T) bool) *PriorityQueue[T] {
	return Wrap[T](Trees.NewC(lessThan))
}

// Wrap t in a PriorityQueue. t must not be used directly afterwards.
func Wrap[T any](t Trees.MaxHeap[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{t: t, ready: make(chan struct{})}
}

func (q *PriorityQueue[T]) Push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.t.Insert(item)
	if q.waiters > 0 {
		close(q.ready)
		q.ready = make(chan struct{})
		q.waiters = 0
	}
}

func (q *PriorityQueue[T]) Pop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, err := q.t.Pop()
	if err != nil {
		return v, &EmptyQueueError{err}
	}
	return v, nil
}

func (q *PriorityQueue[T]) Peek() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, err := q.t.Peek()
	if err != nil {
		return v, &EmptyQueueError{err}
	}
	return v, nil
}

func (q *PriorityQueue[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.t.Empty()
}

func (q *PriorityQueue[T]) Size() uint {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.t.Size()
}

// WaitAndPop [BlockingQueue.WaitAndPop]. Waiters aren't served in any
// particular order.
func (q *PriorityQueue[T]) WaitAndPop(ctx context.Context) (T, error) {
	for {
		q.mu.Lock()
		if !q.t.Empty() {
			v, _ := q.t.Pop()
			q.mu.Unlock()
			return v, nil
		}
		ready := q.ready
		q.waiters++
		q.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			q.mu.Lock()
			if q.ready == ready {
				q.waiters--
			}
			q.mu.Unlock()
			return *new(T), ctx.Err()
		}
	}
}

// Drain pops every item, from the greatest to the smallest.
func (q *PriorityQueue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	vs := make([]T, 0, q.t.Size())
	for !q.t.Empty() {
		v, _ := q.t.Pop()
		vs = append(vs, v)
	}
	return vs
}
