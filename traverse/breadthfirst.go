package traverse

import (
	"go.lepak.sg/traversal/deque"
	"go.lepak.sg/traversal/seq"
)

var _ seq.Iterator[*Path[*int]] = (*BreadthFirst[*int])(nil)

// BreadthFirst is a queue-based level-order iterator, yielding each
// node with its Path. The queue holds one pending expansion per
// yielded node, still unevaluated: a node's children are not pulled
// until the traversal reaches their level. Each node is expanded
// exactly once, when it is yielded.
type BreadthFirst[N comparable] struct {
	expand  Expander[N]
	pending deque.Queue[seq.Iterator[*Path[N]]]
	cur     *Path[N]
}

// NewBreadthFirst creates a queue-based level-order iterator over
// expand, yielding each node with its Path. The expansion is not
// cycle-checked; graph entry points wrap it first.
func NewBreadthFirst[N comparable](root N, expand Expander[N]) *BreadthFirst[N] {
	b := &BreadthFirst[N]{expand: expand}
	var zero N
	if root != zero {
		b.pending.Push(seq.Of(&Path[N]{Node: root}))
	}
	return b
}

// Next advances to the next node in level order.
func (b *BreadthFirst[N]) Next() bool {
	for {
		front, ok := b.pending.Peek()
		if !ok {
			return false
		}
		if !front.Next() {
			b.pending.Pop()
			continue
		}

		cur := front.Item()
		b.cur = cur

		var zero N
		if cur.Node != zero {
			b.pending.Push(seq.Map(b.expand(cur.Node), func(n N) *Path[N] {
				return &Path[N]{Node: n, Parent: cur}
			}))
		}
		return true
	}
}

// Item returns the Path of the node Next arrived at.
func (b *BreadthFirst[N]) Item() *Path[N] {
	return b.cur
}
