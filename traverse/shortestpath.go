package traverse

import (
	"go.lepak.sg/traversal/pqueue"
	"go.lepak.sg/traversal/seq"
)

// CostFunc reports the cost of stepping from one path node to the
// next. Both arguments carry their full back-pointer chains, so a
// cost may depend on how a node was reached, not just on the edge.
// Costs must not be negative: a negative edge can make a node's
// cheapest path turn up after the node was already yielded, and
// this is not validated or detected.
type CostFunc[N any] func(from, to *Path[N]) float64

var _ seq.Iterator[*Path[*int]] = (*ShortestPath[*int])(nil)

type spEntry[N any] struct {
	cost float64
	tick uint64
	path *Path[N]
}

// ShortestPath is a best-first iterator over a graph shape: nodes
// are yielded in order of increasing total path cost from the root
// (Dijkstra's algorithm). Edges are expanded lazily, only when the
// node they leave is yielded.
//
// A node may be sitting in the frontier several times, once per
// path found to it before it was yielded; the cheapest entry wins
// and the stale ones are skipped when popped. Entries of equal cost
// pop in insertion order, so with a uniform cost function the yield
// order is exactly breadth-first.
type ShortestPath[N comparable] struct {
	expand   Expander[N]
	cost     CostFunc[N]
	frontier *pqueue.Heap[spEntry[N]]
	seen     map[N]struct{}
	nextTick uint64
	cur      *Path[N]
	curCost  float64
}

// NewDijkstra creates a shortest-path iterator from root under
// cost, yielding each node with its Path. The expansion is
// revisit-safe on its own (a node is never expanded or yielded
// twice), so it should not be additionally cycle-filtered.
func NewDijkstra[N comparable](root N, expand Expander[N], cost CostFunc[N]) *ShortestPath[N] {
	s := &ShortestPath[N]{
		expand: expand,
		cost:   cost,
		seen:   make(map[N]struct{}),
		frontier: pqueue.New(func(a, b spEntry[N]) bool {
			if a.cost != b.cost {
				return a.cost < b.cost
			}
			return a.tick < b.tick
		}),
	}

	var zero N
	if root != zero {
		s.push(0, &Path[N]{Node: root})
	}
	return s
}

// NewAStar creates a best-first iterator guided by a heuristic
// estimate of the remaining cost: it is NewDijkstra with the cost
// of every step inflated by the heuristic. With an admissible
// heuristic (never overestimating, not validated here) the
// destination's path is still optimal, found sooner; with a zero
// heuristic it is Dijkstra exactly.
func NewAStar[N comparable](root N, expand Expander[N], cost, heuristic CostFunc[N]) *ShortestPath[N] {
	return NewDijkstra(root, expand, func(from, to *Path[N]) float64 {
		return cost(from, to) + heuristic(from, to)
	})
}

func (s *ShortestPath[N]) push(cost float64, p *Path[N]) {
	s.frontier.Push(spEntry[N]{cost: cost, tick: s.nextTick, path: p})
	s.nextTick++
}

// Next advances to the unvisited node with the cheapest known path.
func (s *ShortestPath[N]) Next() bool {
	for {
		e, ok := s.frontier.Pop()
		if !ok {
			return false
		}
		if _, dup := s.seen[e.path.Node]; dup {
			// stale entry; a cheaper path got here first
			continue
		}
		s.seen[e.path.Node] = struct{}{}
		s.cur, s.curCost = e.path, e.cost

		kids := s.expand(e.path.Node)
		if kids != nil {
			var zero N
			for kids.Next() {
				n := kids.Item()
				if n == zero {
					continue
				}
				if _, dup := s.seen[n]; dup {
					continue
				}
				to := &Path[N]{Node: n, Parent: e.path}
				s.push(e.cost+s.cost(e.path, to), to)
			}
		}
		return true
	}
}

// Item returns the Path of the node Next arrived at.
func (s *ShortestPath[N]) Item() *Path[N] {
	return s.cur
}

// Cost returns the total path cost of the node Next arrived at.
func (s *ShortestPath[N]) Cost() float64 {
	return s.curCost
}
