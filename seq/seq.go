// Package seq provides a minimal lazy sequence abstraction:
// pull-based iterators over arbitrary element types, plus the
// usual adapters (map, filter, skip, concat) over them.
// Nothing is evaluated until an element is pulled with Next.
package seq

// Iterator describes a pull-based sequence.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times; once it returns
// false it keeps returning false.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	for it.Next() {
//		v := it.Item()
//		... do stuff with v, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

var _ Iterator[int] = (*sliceIter[int])(nil)

type sliceIter[T any] struct {
	s []T
	i int
}

// FromSlice returns an iterator over the elements of s, in order.
// The slice is not copied; it should not be mutated while iterating.
func FromSlice[T any](s []T) Iterator[T] {
	return &sliceIter[T]{s: s, i: -1}
}

// Of returns an iterator over the given elements, in order.
func Of[T any](items ...T) Iterator[T] {
	return FromSlice(items)
}

// Empty returns an iterator that yields nothing.
func Empty[T any]() Iterator[T] {
	return FromSlice[T](nil)
}

func (it *sliceIter[T]) Next() bool {
	if it.i >= len(it.s) {
		return false
	}
	it.i++
	return it.i < len(it.s)
}

func (it *sliceIter[T]) Item() T {
	return it.s[it.i]
}

var _ Iterator[int] = (*genIter[int])(nil)

type genIter[T any] struct {
	fn   func() (T, bool)
	cur  T
	done bool
}

// Generate returns an iterator driven by fn.
// Each pull calls fn once; fn returning false ends the sequence,
// after which fn is not called again.
// fn may never return false, in which case the sequence is infinite.
func Generate[T any](fn func() (T, bool)) Iterator[T] {
	return &genIter[T]{fn: fn}
}

func (g *genIter[T]) Next() bool {
	if g.done {
		return false
	}

	v, ok := g.fn()
	if !ok {
		g.done = true
		var zero T
		g.cur = zero
		return false
	}

	g.cur = v
	return true
}

func (g *genIter[T]) Item() T {
	return g.cur
}
