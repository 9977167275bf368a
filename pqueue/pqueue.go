// Package pqueue provides a binary min-heap keyed by a
// caller-supplied ordering, built on container/heap.
package pqueue

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// entries adapts a slice and a less function to heap.Interface.
type entries[T any] struct {
	s    []T
	less func(a, b T) bool
}

var _ heap.Interface = (*entries[int])(nil)

func (e *entries[_]) Len() int {
	return len(e.s)
}

func (e *entries[T]) Less(i, j int) bool {
	return e.less(e.s[i], e.s[j])
}

func (e *entries[_]) Swap(i, j int) {
	e.s[i], e.s[j] = e.s[j], e.s[i]
}

func (e *entries[T]) Push(x any) {
	e.s = append(e.s, x.(T))
}

func (e *entries[T]) Pop() any {
	x := e.s[len(e.s)-1]
	var zero T
	e.s[len(e.s)-1] = zero
	e.s = e.s[:len(e.s)-1]
	return x
}

// Heap is a priority queue. The element ordering is fixed at
// construction. It is not safe for concurrent use.
type Heap[T any] struct {
	h entries[T]
}

// New creates a Heap ordered by less: the element for which
// less(it, every other element) holds is popped first.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{h: entries[T]{less: less}}
}

// NewOrdered creates a Heap over an ordered element type,
// popping the smallest element first.
func NewOrdered[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// Len returns the number of elements held.
func (h *Heap[T]) Len() int {
	return h.h.Len()
}

// Push adds v to the heap in O(log n).
func (h *Heap[T]) Push(v T) {
	heap.Push(&h.h, v)
}

// Pop removes and returns the least element in O(log n).
// If the heap is empty, the zero T and false are returned.
func (h *Heap[T]) Pop() (T, bool) {
	if h.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&h.h).(T), true
}

// Peek returns the least element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return h.h.s[0], true
}
