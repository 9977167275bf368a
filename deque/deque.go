// Package deque provides a doubly linked list with O(1) operations
// at both ends, and thin stack and queue adapters over it.
package deque

import "go.lepak.sg/traversal/seq"

type node[T any] struct {
	value      T
	prev, next *node[T]
}

// List is a doubly linked list. The zero List is empty and ready
// for use. It is not safe for concurrent use.
type List[T any] struct {
	head, tail *node[T]
	n          int
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.n
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	nd := &node[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = nd
	} else {
		l.tail = nd
	}
	l.head = nd
	l.n++
}

// PushBack inserts v at the back of the list.
func (l *List[T]) PushBack(v T) {
	nd := &node[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = nd
	} else {
		l.head = nd
	}
	l.tail = nd
	l.n++
}

// PopFront removes and returns the front element.
// If the list is empty, the zero T and false are returned.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	nd := l.head
	l.head = nd.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	// don't keep *T alive through the removed node
	nd.next = nil
	l.n--
	return nd.value, true
}

// PopBack removes and returns the back element.
// If the list is empty, the zero T and false are returned.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	nd := l.tail
	l.tail = nd.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	nd.prev = nil
	l.n--
	return nd.value, true
}

// Front returns the front element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the back element without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Iterator returns an iterator over the list from front to back.
// The list must not be mutated while iterating.
func (l *List[T]) Iterator() seq.Iterator[T] {
	at := l.head
	return seq.Generate(func() (T, bool) {
		if at == nil {
			var zero T
			return zero, false
		}
		v := at.value
		at = at.next
		return v, true
	})
}

// Stack is a LIFO adapter over List.
// The zero Stack is empty and ready for use.
type Stack[T any] struct {
	l List[T]
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.l.Len()
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.l.PushBack(v)
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() (T, bool) {
	return s.l.PopBack()
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.l.Back()
}

// Queue is a FIFO adapter over List.
// The zero Queue is empty and ready for use.
type Queue[T any] struct {
	l List[T]
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.l.Len()
}

// Push places v at the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.l.PushBack(v)
}

// Pop removes and returns the front of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	return q.l.PopFront()
}

// Peek returns the front of the queue without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	return q.l.Front()
}
