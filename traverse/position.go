package traverse

import "go.lepak.sg/traversal/seq"

// Position pairs a node with a snapshot of its ancestor chain.
// Ancestors is root-first and its length is the node's depth; the
// traversal root has no ancestors. Each yielded Position owns its
// slice: engines never touch it again after yielding.
type Position[N any] struct {
	Node      N
	Ancestors []N
}

// Depth returns the node's distance from the traversal root.
func (p *Position[N]) Depth() int {
	return len(p.Ancestors)
}

// Parent returns the node's immediate ancestor, or the zero N and
// false for the traversal root.
func (p *Position[N]) Parent() (N, bool) {
	if len(p.Ancestors) == 0 {
		var zero N
		return zero, false
	}
	return p.Ancestors[len(p.Ancestors)-1], true
}

// Path pairs a node with a back pointer to its parent's Path. The
// traversal root's Parent is nil. Chains are shared: a node's chain
// is a suffix of each of its descendants' chains. This sharing is
// deliberate; consumers must treat a yielded Path as immutable.
//
// Compared to Position, a Path costs nothing extra per yield, at the
// price of O(depth) work to reconstruct the ancestor chain.
type Path[N any] struct {
	Node   N
	Parent *Path[N]
}

// Depth returns the node's distance from the traversal root,
// in O(depth) time.
func (p *Path[N]) Depth() int {
	d := 0
	for at := p.Parent; at != nil; at = at.Parent {
		d++
	}
	return d
}

// Ancestors returns a lazy sequence of the node's ancestors,
// nearest parent first, ending with the traversal root.
// The node itself is not included.
func (p *Path[N]) Ancestors() seq.Iterator[N] {
	at := p
	return seq.Generate(func() (N, bool) {
		if at == nil || at.Parent == nil {
			var zero N
			return zero, false
		}
		at = at.Parent
		return at.Node, true
	})
}

// PathFromRoot materializes the chain from the traversal root down
// to this node, inclusive.
func (p *Path[N]) PathFromRoot() []N {
	out := make([]N, p.Depth()+1)
	for at, i := p, len(out)-1; at != nil; at, i = at.Parent, i-1 {
		out[i] = at.Node
	}
	return out
}
