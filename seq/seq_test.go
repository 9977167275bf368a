package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain[T any](it Iterator[T]) []T {
	var out []T
	for it.Next() {
		out = append(out, it.Item())
	}
	return out
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{
			name: "nil",
		},
		{
			name: "empty",
			in:   []int{},
		},
		{
			name: "one",
			in:   []int{1},
		},
		{
			name: "many",
			in:   []int{3, 1, 4, 1, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := FromSlice(tt.in)
			var got []int
			for it.Next() {
				got = append(got, it.Item())
			}
			assert.Equal(t, len(tt.in), len(got))
			for i := range tt.in {
				assert.Equal(t, tt.in[i], got[i])
			}
			assert.False(t, it.Next(), "after exhaustion")
			assert.False(t, it.Next(), "still after exhaustion")
		})
	}
}

func TestOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, drain(Of("a", "b")))
}

func TestEmpty(t *testing.T) {
	it := Empty[int]()
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestItem_Repeatable(t *testing.T) {
	it := Of(7, 8)
	assert.True(t, it.Next())
	assert.Equal(t, 7, it.Item())
	assert.Equal(t, 7, it.Item(), "Item must not advance")
	assert.True(t, it.Next())
	assert.Equal(t, 8, it.Item())
}

func TestGenerate(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		n := 0
		it := Generate(func() (int, bool) {
			n++
			return n, n <= 3
		})
		assert.Equal(t, []int{1, 2, 3}, drain(it))
		assert.False(t, it.Next())
	})

	t.Run("fn not called after false", func(t *testing.T) {
		calls := 0
		it := Generate(func() (int, bool) {
			calls++
			return 0, false
		})
		assert.False(t, it.Next())
		assert.False(t, it.Next())
		assert.Equal(t, 1, calls)
	})

	t.Run("infinite", func(t *testing.T) {
		n := 0
		it := Generate(func() (int, bool) {
			n++
			return n, true
		})
		for i := 1; i <= 100; i++ {
			assert.True(t, it.Next())
			assert.Equal(t, i, it.Item())
		}
	})
}
