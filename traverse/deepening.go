package traverse

import "go.lepak.sg/traversal/seq"

var _ seq.Iterator[*Position[*int]] = (*Deepening[*int])(nil)

// Deepening yields nodes in level order without a queue, by running
// a depth-bounded pre-order pass per level: pass n re-walks the
// shape down to depth n and yields only the nodes at exactly depth
// n. The traversal is over once a pass yields nothing.
//
// The price is re-expansion: a node is expanded once per pass that
// descends through it, so shallow nodes are expanded O(depth of the
// shape) times. BreadthFirst expands each node exactly once instead,
// paying with a queue of pending expansions; this engine holds no
// more state than a single depth-first walk.
type Deepening[N comparable] struct {
	inner    *DepthFirst[N]
	target   int
	yielded  bool
	seen     map[N]struct{}
	finished bool
	cur      *Position[N]
}

// NewDeepening creates an iterative-deepening level-order iterator
// over expand, yielding each node with its Position. The Ancestors
// reported are the pre-order path of the pass that yielded the node.
// The expansion is not cycle-checked.
func NewDeepening[N comparable](root N, expand Expander[N]) *Deepening[N] {
	d := NewPreOrder(root, expand)
	d.maxDepth = 0
	return &Deepening[N]{inner: d}
}

// NewUniqueDeepening is NewDeepening plus duplicate suppression: a
// node reachable via several paths is yielded only the first time,
// at its shallowest depth. Meant for graph shapes, where the
// per-pass re-expansion cannot be combined with the usual
// mark-on-offer cycle filter. The depth bound keeps every pass
// finite even on cyclic shapes.
func NewUniqueDeepening[N comparable](root N, expand Expander[N]) *Deepening[N] {
	u := NewDeepening(root, expand)
	u.seen = make(map[N]struct{})
	return u
}

// Next advances to the next node in level order.
func (d *Deepening[N]) Next() bool {
	if d.finished {
		return false
	}

	for {
		for d.inner.Next() {
			p := d.inner.Item()
			if p.Depth() != d.target {
				// yielded by an earlier, shallower pass
				continue
			}
			if d.seen != nil {
				if _, ok := d.seen[p.Node]; ok {
					continue
				}
				d.seen[p.Node] = struct{}{}
			}
			d.yielded = true
			d.cur = p
			return true
		}

		if !d.yielded {
			// an entire pass with nothing at the target depth:
			// there is nothing deeper either
			d.finished = true
			return false
		}

		d.target++
		d.yielded = false
		d.inner.reset(d.target)
	}
}

// Item returns the Position of the node Next arrived at.
func (d *Deepening[N]) Item() *Position[N] {
	return d.cur
}
