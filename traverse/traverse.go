// Package traverse provides lazy, resumable traversal iterators over
// caller-supplied tree, binary tree and graph shapes.
//
// A consumer implements one capability (enumerating children or
// adjacent nodes) and gets depth-first pre- and post-order,
// breadth-first (queued or iterative-deepening), in-order (binary
// only), Dijkstra and A* iterators, each optionally annotated with
// positional metadata (depth, ancestor chain).
//
// Every iterator performs no work until pulled: each call to Next
// advances the traversal just far enough to produce one node.
// All traversal state is owned by the iterator instance, so any
// number of independent iterators may be constructed over the same
// nodes and driven in any interleaving.
//
// Tree traversals assume the shape is acyclic and never check for
// cycles; feeding them a cyclic structure is a contract violation
// and the traversal may not terminate. Graph traversals suppress
// revisits and always terminate on cyclic shapes.
//
// Mutating a node's expansion mid-traversal is safe only for nodes
// strictly deeper than the one most recently yielded. Mutating a
// sibling, ancestor, or an already-discovered but not yet yielded
// node leaves the traversal results undefined. This is not guarded
// against: enforcing it would mean expanding everything eagerly.
package traverse

import (
	"errors"
	"fmt"

	"go.lepak.sg/traversal/seq"
)

// Expander maps a node to the sequence of nodes reachable from it:
// its children for a tree, its adjacent nodes for a graph.
// Returning nil means the node has nothing below it.
// An Expander must return a fresh iterator on every call.
type Expander[N any] func(N) seq.Iterator[N]

// TreeNode is the capability contract for tree-shaped nodes.
// Children must return a fresh iterator on every call, or nil for
// a leaf. The zero N is "absent": absent roots traverse as empty,
// and absent children should simply not be yielded.
// The shape must be acyclic.
type TreeNode[N any] interface {
	comparable
	Children() seq.Iterator[N]
}

// BinaryTreeNode is the capability contract for binary tree nodes.
// Left and Right report the respective child and whether it exists.
type BinaryTreeNode[N any] interface {
	comparable
	Left() (N, bool)
	Right() (N, bool)
}

// GraphNode is the capability contract for graph-shaped nodes.
// Adjacent must return a fresh iterator on every call, or nil.
// Cycles are allowed; the graph entry points filter revisits.
type GraphNode[N any] interface {
	comparable
	Adjacent() seq.Iterator[N]
}

// Children is the Expander for any TreeNode: it defers to the
// node's own Children method.
func Children[N TreeNode[N]](n N) seq.Iterator[N] {
	return n.Children()
}

// Adjacent is the Expander for any GraphNode: it defers to the
// node's own Adjacent method.
func Adjacent[N GraphNode[N]](n N) seq.Iterator[N] {
	return n.Adjacent()
}

// BinaryChildren derives a tree Expander from a binary node's Left
// and Right: the non-absent children, left first. Left and Right
// are each called once per BinaryChildren call.
func BinaryChildren[N BinaryTreeNode[N]](n N) seq.Iterator[N] {
	var kids []N
	if l, ok := n.Left(); ok {
		kids = append(kids, l)
	}
	if r, ok := n.Right(); ok {
		kids = append(kids, r)
	}
	return seq.FromSlice(kids)
}

// cycleFree wraps expand so that a traversal sees every node at most
// once. A candidate is marked in seen the moment the filter admits
// it, not when it is later visited, so a node discovered via one
// path cannot be queued again via another in-flight path.
// Each traversal owns its own seen set.
func cycleFree[N comparable](expand Expander[N], seen map[N]struct{}) Expander[N] {
	return func(n N) seq.Iterator[N] {
		return seq.Filter(expand(n), func(c N) bool {
			if _, ok := seen[c]; ok {
				return false
			}
			seen[c] = struct{}{}
			return true
		})
	}
}

// newSeen creates the visited set for one graph traversal, with the
// root already marked so cycles back to it are suppressed.
func newSeen[N comparable](root N) map[N]struct{} {
	seen := make(map[N]struct{})
	var zero N
	if root != zero {
		seen[root] = struct{}{}
	}
	return seen
}

// Nodes strips position metadata, yielding the bare nodes.
func Nodes[N comparable](in seq.Iterator[*Position[N]]) seq.Iterator[N] {
	return seq.Map(in, func(p *Position[N]) N { return p.Node })
}

// PathNodes strips path metadata, yielding the bare nodes.
func PathNodes[N comparable](in seq.Iterator[*Path[N]]) seq.Iterator[N] {
	return seq.Map(in, func(p *Path[N]) N { return p.Node })
}

// Order selects a traversal strategy for Walk.
type Order int

const (
	// Pre yields each node before any node below it.
	Pre Order = iota
	// Post yields each node after every node below it.
	Post
	// LevelQueued yields nodes shallowest-first using a queue,
	// expanding each node once.
	LevelQueued
	// LevelDeepening yields nodes shallowest-first using repeated
	// depth-bounded passes, re-expanding shallow nodes once per pass.
	LevelDeepening
)

func (o Order) String() string {
	switch o {
	case Pre:
		return "Pre"
	case Post:
		return "Post"
	case LevelQueued:
		return "LevelQueued"
	case LevelDeepening:
		return "LevelDeepening"
	default:
		return fmt.Sprintf("<invalid traverse.Order %d>", int(o))
	}
}

// ErrUnknownOrder is returned by Walk for an Order it does not
// implement. This is a programming error on the caller's part,
// surfaced as an error instead of a silently empty iteration.
var ErrUnknownOrder = errors.New("traverse: unknown traversal order")

// Walk constructs a traversal of the shape rooted at root in the
// given order, yielding bare nodes. The expansion is not
// cycle-checked; use the Graph entry points for cyclic shapes.
func Walk[N comparable](order Order, root N, expand Expander[N]) (seq.Iterator[N], error) {
	switch order {
	case Pre:
		return Nodes[N](NewPreOrder(root, expand)), nil
	case Post:
		return Nodes[N](NewPostOrder(root, expand)), nil
	case LevelQueued:
		return PathNodes[N](NewBreadthFirst(root, expand)), nil
	case LevelDeepening:
		return Nodes[N](NewDeepening(root, expand)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}
}
