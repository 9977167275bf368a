package traverse

import (
	"golang.org/x/exp/slices"

	"go.lepak.sg/traversal/deque"
	"go.lepak.sg/traversal/seq"
)

var _ seq.Iterator[*Position[*int]] = (*DepthFirst[*int])(nil)

type dfsOrder int

const (
	preOrder dfsOrder = iota
	postOrder
)

// DepthFirst is a resumable depth-first iterator over an expansion
// function, yielding a Position per node. It is the engine behind
// the pre-order, post-order and iterative-deepening entry points.
//
// Recursive depth-first traversal looks like this:
//
//	func visit(n N, f func(N)) {
//		f(n)			// pre-order
//		for c := range expand(n) {
//			visit(c, f)
//		}
//		f(n)			// post-order
//	}
//
// DepthFirst replaces the call stack with an explicit stack of
// child iterators, one per level currently being expanded, so the
// walk can pause after every yielded node and resume on the next
// call to Next. A parallel node stack records the node most
// recently pulled at each level; everything on it below the top is
// exactly the current node's ancestor chain.
type DepthFirst[N comparable] struct {
	root   N
	expand Expander[N]
	order  dfsOrder

	// maxDepth bounds how deep new levels may be pushed;
	// -1 means unbounded. Used by the iterative-deepening walk.
	maxDepth int

	// probeOnce makes post-order check for children by peeking
	// at a single expansion instead of expanding twice. Set for
	// graph walks, where the cycle filter makes every expansion
	// single-shot.
	probeOnce bool

	levels   deque.Stack[seq.Iterator[N]]
	nodes    []N
	finished bool
	cur      *Position[N]
}

// NewPreOrder creates a depth-first iterator that yields each node
// before any node below it, with its Position. expand is called
// exactly once per reachable node.
func NewPreOrder[N comparable](root N, expand Expander[N]) *DepthFirst[N] {
	return &DepthFirst[N]{
		root:     root,
		expand:   expand,
		order:    preOrder,
		maxDepth: -1,
	}
}

// NewPostOrder creates a depth-first iterator that yields each node
// after every node below it, with its Position. To decide whether a
// node has children without consuming the expansion it descends
// into, expand is called twice per non-leaf node (and once per
// leaf); Expanders must therefore return a fresh iterator per call.
func NewPostOrder[N comparable](root N, expand Expander[N]) *DepthFirst[N] {
	return &DepthFirst[N]{
		root:     root,
		expand:   expand,
		order:    postOrder,
		maxDepth: -1,
	}
}

// current is the node most recently pulled at the deepest level.
func (d *DepthFirst[N]) current() N {
	return d.nodes[len(d.nodes)-1]
}

// canDescend reports whether pushing one more level would stay
// within the depth bound. Nodes pulled from a level at stack
// position i are at depth i.
func (d *DepthFirst[N]) canDescend() bool {
	return d.maxDepth < 0 || d.levels.Len() <= d.maxDepth
}

// tryPushLevel pushes the next level to explore: the root's
// single-element level if nothing is pushed yet, otherwise the
// current node's expansion. It refuses (returning false) for an
// absent root or an expansion with nothing in it.
func (d *DepthFirst[N]) tryPushLevel() bool {
	if d.levels.Len() == 0 {
		var zero N
		if d.root == zero {
			return false
		}
		d.levels.Push(seq.Of(d.root))
		return true
	}

	kids := d.expand(d.current())
	if kids == nil {
		return false
	}
	d.levels.Push(kids)
	return true
}

// topExhausted pulls the next node from the top level. If the level
// has run out it reports true and the caller should pop. Otherwise
// the pulled node becomes current at this depth and it reports
// false. The node stack may be one short of the level stack (a
// level can be pushed before anything is pulled from it); this is
// where the two are brought back into lock-step.
func (d *DepthFirst[N]) topExhausted() bool {
	top, ok := d.levels.Peek()
	if !ok || !top.Next() {
		return true
	}

	n := top.Item()
	if len(d.nodes) == d.levels.Len() {
		d.nodes[len(d.nodes)-1] = n
	} else {
		d.nodes = append(d.nodes, n)
	}
	return false
}

// popLevel discards the top level, and the node pulled from it if
// one was.
func (d *DepthFirst[N]) popLevel() {
	d.levels.Pop()
	if len(d.nodes) > d.levels.Len() {
		var zero N
		d.nodes[len(d.nodes)-1] = zero
		d.nodes = d.nodes[:len(d.nodes)-1]
	}
}

// reset clears all traversal state so the next call to Next starts
// over from the root, with a new depth bound.
func (d *DepthFirst[N]) reset(maxDepth int) {
	for d.levels.Len() > 0 {
		d.popLevel()
	}
	d.maxDepth = maxDepth
	d.finished = false
	d.cur = nil
}

func (d *DepthFirst[N]) snapshot() *Position[N] {
	return &Position[N]{
		Node:      d.current(),
		Ancestors: slices.Clone(d.nodes[:len(d.nodes)-1]),
	}
}

// Next advances to the next node in depth-first order.
func (d *DepthFirst[N]) Next() bool {
	if d.finished {
		return false
	}
	if d.order == preOrder {
		return d.nextPre()
	}
	return d.nextPost()
}

// Item returns the Position of the node Next arrived at.
func (d *DepthFirst[N]) Item() *Position[N] {
	return d.cur
}

func (d *DepthFirst[N]) nextPre() bool {
	// descend under the node yielded last time (or seed the root),
	// then retreat past any levels that have run dry
	if d.canDescend() {
		d.tryPushLevel()
	}
	for d.levels.Len() > 0 && d.topExhausted() {
		d.popLevel()
	}

	if d.levels.Len() == 0 {
		d.finished = true
		return false
	}

	d.cur = d.snapshot()
	return true
}

func (d *DepthFirst[N]) nextPost() bool {
	if d.levels.Len() == 0 {
		// first call: seed the root and dive to the first leaf
		if !d.tryPushLevel() {
			d.finished = true
			return false
		}
		d.topExhausted() // pulls the root
		d.descend()
	} else if d.topExhausted() {
		// the current node's last sibling is done, so its parent
		// (current again after the pop) is next in post-order
		d.popLevel()
	} else {
		// a sibling was pulled; dive to its first leaf
		d.descend()
	}

	// the root is always the last node out
	if d.levels.Len() == 1 {
		d.finished = true
	}
	d.cur = d.snapshot()
	return true
}

// descend dives from the current node to its leftmost leaf, pushing
// one level per step. Each step first probes whether the current
// node has any children at all, then expands again to walk them;
// with probeOnce set, the probed iterator itself is stitched back
// together and walked instead.
func (d *DepthFirst[N]) descend() {
	for {
		probe := d.expand(d.current())
		if probe == nil || !probe.Next() {
			return // leaf
		}

		if d.probeOnce {
			d.levels.Push(seq.Concat(seq.Of(probe.Item()), probe))
		} else {
			d.levels.Push(d.expand(d.current()))
		}

		if d.topExhausted() {
			// an expansion that came up empty on the second look;
			// treat the node as a leaf
			d.popLevel()
			return
		}
	}
}
