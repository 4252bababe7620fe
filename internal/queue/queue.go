// Package queue implements a generic unbounded FIFO queue.
//
// The queue is backed by a growable ring buffer: pushes and pops are
// amortized O(1) and popped cells are zeroed so the queue never pins
// values it no longer holds. It is not safe for concurrent use; the
// worker pool serializes access under its own mutex.
package queue

// FIFO is an unbounded first-in-first-out queue.
type FIFO[T any] struct {
	buf   []T
	head  int
	count int
}

// New creates a FIFO with storage preallocated for the given number of
// elements.
func New[T any](capacity int) *FIFO[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &FIFO[T]{buf: make([]T, capacity)}
}

// Len returns the number of queued elements.
func (q *FIFO[T]) Len() int {
	return q.count
}

// Push appends v to the back of the queue.
func (q *FIFO[T]) Push(v T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++
}

// Pop removes and returns the front element. The second return value is
// false if the queue is empty.
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // do not pin the popped value
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return v, true
}

// Clear discards every queued element, retaining the buffer.
func (q *FIFO[T]) Clear() {
	var zero T
	for i := 0; i < q.count; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head = 0
	q.count = 0
}

func (q *FIFO[T]) grow() {
	next := make([]T, max(len(q.buf)*2, 8))
	for i := 0; i < q.count; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
