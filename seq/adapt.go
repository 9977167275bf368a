package seq

// The adapters in this file all accept a nil input iterator and
// treat it as an empty sequence. This lets producers return nil
// for "no elements" without every consumer checking for it.

var _ Iterator[string] = (*mapIter[int, string])(nil)

type mapIter[T, U any] struct {
	in Iterator[T]
	fn func(T) U
}

// Map returns an iterator yielding fn applied to each element of in.
// fn is called lazily, once per pull.
func Map[T, U any](in Iterator[T], fn func(T) U) Iterator[U] {
	return &mapIter[T, U]{in: in, fn: fn}
}

func (m *mapIter[T, U]) Next() bool {
	return m.in != nil && m.in.Next()
}

func (m *mapIter[T, U]) Item() U {
	return m.fn(m.in.Item())
}

var _ Iterator[int] = (*filterIter[int])(nil)

type filterIter[T any] struct {
	in   Iterator[T]
	keep func(T) bool
}

// Filter returns an iterator yielding only the elements of in for
// which keep returns true. keep is called at pull time, exactly once
// per element of in, in order.
func Filter[T any](in Iterator[T], keep func(T) bool) Iterator[T] {
	return &filterIter[T]{in: in, keep: keep}
}

func (f *filterIter[T]) Next() bool {
	if f.in == nil {
		return false
	}

	for f.in.Next() {
		if f.keep(f.in.Item()) {
			return true
		}
	}
	return false
}

func (f *filterIter[T]) Item() T {
	return f.in.Item()
}

var _ Iterator[int] = (*skipIter[int])(nil)

type skipIter[T any] struct {
	in Iterator[T]
	n  int
}

// Skip returns an iterator yielding the elements of in after the
// first n. The skipped elements are pulled (and discarded) on the
// first call to Next.
func Skip[T any](in Iterator[T], n int) Iterator[T] {
	return &skipIter[T]{in: in, n: n}
}

func (s *skipIter[T]) Next() bool {
	if s.in == nil {
		return false
	}

	for s.n > 0 {
		s.n--
		if !s.in.Next() {
			s.n = 0
			return false
		}
	}
	return s.in.Next()
}

func (s *skipIter[T]) Item() T {
	return s.in.Item()
}

var _ Iterator[int] = (*concatIter[int])(nil)

type concatIter[T any] struct {
	parts []Iterator[T]
}

// Concat returns an iterator yielding all elements of each part in
// turn. Parts that are nil are skipped.
func Concat[T any](parts ...Iterator[T]) Iterator[T] {
	return &concatIter[T]{parts: parts}
}

func (c *concatIter[T]) Next() bool {
	for len(c.parts) > 0 {
		if c.parts[0] != nil && c.parts[0].Next() {
			return true
		}
		c.parts = c.parts[1:]
	}
	return false
}

func (c *concatIter[T]) Item() T {
	return c.parts[0].Item()
}

// Find pulls elements from in until pred returns true, and returns
// that element. If in ends first, the zero T and false are returned.
func Find[T any](in Iterator[T], pred func(T) bool) (T, bool) {
	if in != nil {
		for in.Next() {
			if v := in.Item(); pred(v) {
				return v, true
			}
		}
	}

	var zero T
	return zero, false
}

// Collect pulls in to exhaustion and returns the elements as a slice.
// A nil or empty iterator yields a nil slice.
func Collect[T any](in Iterator[T]) []T {
	var out []T
	if in != nil {
		for in.Next() {
			out = append(out, in.Item())
		}
	}
	return out
}
