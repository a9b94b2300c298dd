package sequence

import "iter"

// Queue is an unbounded FIFO backed by a growable ring buffer. It is not
// safe for concurrent use.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{buf: make([]T, max(capacity, 1))}
}

func (q *Queue[T]) Enqueue(v T) {
	if q.buf == nil {
		q.buf = make([]T, 1)
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes the oldest element.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Drain dequeues every element, including ones enqueued by fn, in order.
func (q *Queue[T]) Drain(fn func(T)) int {
	n := 0
	for {
		v, ok := q.Dequeue()
		if !ok {
			return n
		}
		fn(v)
		n++
	}
}

// All yields the queued elements oldest first without removing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.size; i++ {
			if !yield(q.buf[(q.head+i)%len(q.buf)]) {
				return
			}
		}
	}
}

func (q *Queue[T]) Len() int { return q.size }

func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

func (q *Queue[T]) grow() {
	next := make([]T, 2*len(q.buf))
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
