// Package testutils contains helpers shared by the package tests.
package testutils

import (
	"github.com/stretchr/testify/assert"

	"go.lepak.sg/traversal/seq"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainEqual pulls it to exhaustion and expects the elements to
// equal want, in order. It also expects Next to keep reporting
// false once the iterator has ended.
func DrainEqual[T any](t TestT, want []T, it seq.Iterator[T]) {
	t.Logf("draining: expecting %v", want)
	for i, w := range want {
		if !it.Next() {
			t.Errorf("iterator ended early, expecting i=%d %v", i, w)
			return
		}
		assert.Equal(t, w, it.Item(), "i=%d", i)
	}

	if it.Next() {
		t.Errorf("iterator should be exhausted, but yielded: %v", it.Item())
		return
	}
	if it.Next() {
		t.Error("exhausted iterator yielded again on a second Next")
	}
}

// Take pulls at most n elements from it.
func Take[T any](it seq.Iterator[T], n int) []T {
	var out []T
	for len(out) < n && it.Next() {
		out = append(out, it.Item())
	}
	return out
}
