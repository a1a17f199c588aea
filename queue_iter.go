package linkedqueue

import "iter"

// All returns an iterator over the elements of the queue from head
// to tail. The queue is not modified. Mutating the queue while
// iterating is undefined.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes and yields elements from
// the head of the queue until it is empty. Stopping the iteration
// early leaves the remaining elements in place.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := q.PopFront()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// AppendSeq appends every value yielded by seq, in order, at the
// tail of the queue.
func (q *Queue[T]) AppendSeq(seq iter.Seq[T]) {
	for v := range seq {
		q.Append(v)
	}
}
