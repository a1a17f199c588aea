// Package linkedqueue provides a generic singly-linked FIFO queue.
//
// A Queue is a lightweight handle holding references to the head and
// tail of a chain of nodes along with a count of the nodes in the
// chain. Nodes carry only a value and a link to their successor, so
// no bookkeeping ever moves between nodes when the queue is mutated.
//
// The element type is a type parameter; instantiate Queue[any] to
// hold values of arbitrary type. Node allocation uses the Go runtime
// allocator and cannot fail recoverably, so Append and Prepend always
// succeed.
package linkedqueue

import "errors"

// ErrEmpty is returned by operations that consume the front of a
// queue when the queue holds no elements.
var ErrEmpty = errors.New("linkedqueue: queue is empty")

// A Queue is a singly-linked FIFO queue. Values are appended at the
// tail and consumed from the head, and the cached tail reference
// keeps appends O(1). A zero value Queue is ready to use.
//
// A Queue is not safe for concurrent use. Callers sharing a Queue
// between goroutines must provide their own locking.
type Queue[T any] struct {
	head, tail *node[T]
	length     int
}

type node[T any] struct {
	val  T
	next *node[T]
}

// New returns a new, empty queue. It is equivalent to new(Queue[T]).
func New[T any]() *Queue[T] {
	return new(Queue[T])
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.length
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.length == 0
}

// Append adds v at the tail of the queue.
func (q *Queue[T]) Append(v T) {
	n := &node[T]{val: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
}

// Prepend adds v at the head of the queue, in front of any elements
// already present. The previous head, if any, becomes an ordinary
// interior node.
func (q *Queue[T]) Prepend(v T) {
	n := &node[T]{val: v, next: q.head}
	q.head = n
	if q.tail == nil {
		q.tail = n
	}
	q.length++
}

// Peek returns the value at the head of the queue without removing
// it. It returns ok false if the queue is empty.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.head == nil {
		return v, false
	}
	return q.head.val, true
}

// Advance removes the value at the head of the queue and discards
// it. It returns ErrEmpty if the queue is empty. Callers that want
// the removed value should use PopFront instead, as discarding it
// here makes any resources it owns unreachable.
func (q *Queue[T]) Advance() error {
	_, err := q.PopFront()
	return err
}

// PopFront removes and returns the value at the head of the queue.
// It returns ErrEmpty if the queue is empty.
func (q *Queue[T]) PopFront() (v T, err error) {
	if q.head == nil {
		return v, ErrEmpty
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.length--

	return n.val, nil
}

// Clear removes every element from the queue. The chain's nodes
// become unreachable and are reclaimed by the garbage collector. The
// queue never finalizes the values it held, so resources owned by
// them remain the caller's responsibility. Clearing an empty queue
// is a no-op.
func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.length = 0
}
