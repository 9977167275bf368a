package traverse

import "go.lepak.sg/traversal/seq"

// The functions in this file are the capability-contract entry
// points: given a node implementing TreeNode, BinaryTreeNode or
// GraphNode, they wire the node's own expansion into the matching
// engine. The bare-node forms strip the metadata; use the New*
// constructors directly (or Nodes/PathNodes) to mix and match.

// PreOrder traverses the tree rooted at root depth-first, yielding
// each node before its children.
func PreOrder[N TreeNode[N]](root N) seq.Iterator[N] {
	return Nodes[N](NewPreOrder(root, Children[N]))
}

// PreOrderPositions is PreOrder with each node's Position.
func PreOrderPositions[N TreeNode[N]](root N) *DepthFirst[N] {
	return NewPreOrder(root, Children[N])
}

// PostOrder traverses the tree rooted at root depth-first, yielding
// each node after its children.
func PostOrder[N TreeNode[N]](root N) seq.Iterator[N] {
	return Nodes[N](NewPostOrder(root, Children[N]))
}

// PostOrderPositions is PostOrder with each node's Position.
func PostOrderPositions[N TreeNode[N]](root N) *DepthFirst[N] {
	return NewPostOrder(root, Children[N])
}

// LevelOrder traverses the tree rooted at root shallowest-first,
// using a queue of pending expansions.
func LevelOrder[N TreeNode[N]](root N) seq.Iterator[N] {
	return PathNodes[N](NewBreadthFirst(root, Children[N]))
}

// LevelOrderPaths is LevelOrder with each node's Path.
func LevelOrderPaths[N TreeNode[N]](root N) *BreadthFirst[N] {
	return NewBreadthFirst(root, Children[N])
}

// DeepeningLevelOrder traverses the tree rooted at root
// shallowest-first by iterative deepening: no queue, at the cost of
// re-expanding shallow nodes once per level.
func DeepeningLevelOrder[N TreeNode[N]](root N) seq.Iterator[N] {
	return Nodes[N](NewDeepening(root, Children[N]))
}

// DeepeningLevelOrderPositions is DeepeningLevelOrder with each
// node's Position.
func DeepeningLevelOrderPositions[N TreeNode[N]](root N) *Deepening[N] {
	return NewDeepening(root, Children[N])
}

// InOrderNodes traverses the binary shape rooted at root in-order,
// yielding bare nodes. NewInOrder yields Positions instead.
func InOrderNodes[N BinaryTreeNode[N]](root N) seq.Iterator[N] {
	return Nodes[N](NewInOrder(root))
}

// GraphPreOrder traverses the graph reachable from root depth-first,
// yielding each node before the nodes discovered through it. Safe on
// cyclic graphs: every reachable node is yielded at most once.
func GraphPreOrder[N GraphNode[N]](root N) seq.Iterator[N] {
	return Nodes[N](NewPreOrder(root, cycleFree(Adjacent[N], newSeen(root))))
}

// GraphPreOrderPositions is GraphPreOrder with each node's Position.
func GraphPreOrderPositions[N GraphNode[N]](root N) *DepthFirst[N] {
	return NewPreOrder(root, cycleFree(Adjacent[N], newSeen(root)))
}

// GraphPostOrder traverses the graph reachable from root depth-first,
// yielding each node after the nodes discovered through it. Safe on
// cyclic graphs.
func GraphPostOrder[N GraphNode[N]](root N) seq.Iterator[N] {
	return Nodes[N](GraphPostOrderPositions(root))
}

// GraphPostOrderPositions is GraphPostOrder with each node's
// Position.
func GraphPostOrderPositions[N GraphNode[N]](root N) *DepthFirst[N] {
	d := NewPostOrder(root, cycleFree(Adjacent[N], newSeen(root)))
	// the cycle filter marks candidates as it admits them, so the
	// expansion cannot be replayed for the has-children probe
	d.probeOnce = true
	return d
}

// GraphLevelOrder traverses the graph reachable from root
// shallowest-first. Safe on cyclic graphs; each node is expanded
// exactly once.
func GraphLevelOrder[N GraphNode[N]](root N) seq.Iterator[N] {
	return PathNodes[N](GraphLevelOrderPaths(root))
}

// GraphLevelOrderPaths is GraphLevelOrder with each node's Path.
func GraphLevelOrderPaths[N GraphNode[N]](root N) *BreadthFirst[N] {
	return NewBreadthFirst(root, cycleFree(Adjacent[N], newSeen(root)))
}

// GraphDeepeningLevelOrder traverses the graph reachable from root
// shallowest-first by iterative deepening, suppressing duplicate
// yields. Unlike the other graph traversals it re-expands nodes
// (once per pass), since deepening depends on replaying the shape.
func GraphDeepeningLevelOrder[N GraphNode[N]](root N) seq.Iterator[N] {
	return Nodes[N](NewUniqueDeepening(root, Adjacent[N]))
}

// Dijkstra traverses the graph reachable from root cheapest-first
// under cost. See ShortestPath.
func Dijkstra[N GraphNode[N]](root N, cost CostFunc[N]) *ShortestPath[N] {
	return NewDijkstra(root, Adjacent[N], cost)
}

// AStar traverses the graph reachable from root cheapest-first
// under cost, guided by heuristic. See NewAStar.
func AStar[N GraphNode[N]](root N, cost, heuristic CostFunc[N]) *ShortestPath[N] {
	return NewAStar(root, Adjacent[N], cost, heuristic)
}
