package seq

// CoIterator abstracts communication with the goroutine started by
// CoIterate.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel on which the elements of the underlying
// iterator are sent.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It must not be called more than once.
// If the Items channel has been closed, Stop doesn't need to be
// called at all.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration over it.
// The usage is as follows:
//
//	co := seq.CoIterate[T](someIterator)
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either Stop is
// called or the iteration is finished. If you follow the usage
// above, the goroutine will not live beyond the end of the
// for-range loop.
//
// A nil iterator behaves like an empty one.
func CoIterate[T any](it Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if it == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, it Iterator[T]) {
		defer close(out)
		for it.Next() {
			select {
			case out <- it.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, it)

	return co
}
