package traverse

import "go.lepak.sg/traversal/seq"

// tnode is a tree-capable test node that counts its expansions.
type tnode struct {
	id       int
	children []*tnode
	expanded int
}

func (n *tnode) Children() seq.Iterator[*tnode] {
	n.expanded++
	if len(n.children) == 0 {
		return nil
	}
	return seq.FromSlice(n.children)
}

// newUnevenTree builds the reference 11-node tree:
//
//	0 -> 1, 2
//	1 -> 3, 4
//	2 -> 5, 6
//	6 -> 7 -> 8 -> 9 -> 10
//
// all is indexed by node id.
func newUnevenTree() (root *tnode, all []*tnode) {
	all = make([]*tnode, 11)
	for i := range all {
		all[i] = &tnode{id: i}
	}

	link := func(parent int, kids ...int) {
		for _, k := range kids {
			all[parent].children = append(all[parent].children, all[k])
		}
	}
	link(0, 1, 2)
	link(1, 3, 4)
	link(2, 5, 6)
	link(6, 7)
	link(7, 8)
	link(8, 9)
	link(9, 10)

	return all[0], all
}

// unevenDepths maps node id to depth in the reference tree.
var unevenDepths = []int{0, 1, 1, 2, 2, 2, 2, 3, 4, 5, 6}

// bnode is a binary-capable test node that counts Left/Right calls.
type bnode struct {
	id                    int
	left, right           *bnode
	leftCalls, rightCalls int
}

func (n *bnode) Left() (*bnode, bool) {
	n.leftCalls++
	return n.left, n.left != nil
}

func (n *bnode) Right() (*bnode, bool) {
	n.rightCalls++
	return n.right, n.right != nil
}

// newUnevenBinaryTree builds the binary shape of the reference tree:
//
//	0: left 1, right 2
//	1: left 3, right 4
//	2: left 5, right 6
//	6: left 7
//	7: right 8
//	8: left 9
//	9: right 10
func newUnevenBinaryTree() (root *bnode, all []*bnode) {
	all = make([]*bnode, 11)
	for i := range all {
		all[i] = &bnode{id: i}
	}

	all[0].left, all[0].right = all[1], all[2]
	all[1].left, all[1].right = all[3], all[4]
	all[2].left, all[2].right = all[5], all[6]
	all[6].left = all[7]
	all[7].right = all[8]
	all[8].left = all[9]
	all[9].right = all[10]

	return all[0], all
}

// gnode is a graph-capable test node that counts its expansions.
type gnode struct {
	id       int
	adj      []*gnode
	expanded int
}

func (n *gnode) Adjacent() seq.Iterator[*gnode] {
	n.expanded++
	return seq.FromSlice(n.adj)
}

// newGraph builds a graph from an adjacency list.
// all is indexed by node id.
func newGraph(n int, edges map[int][]int) (all []*gnode) {
	all = make([]*gnode, n)
	for i := range all {
		all[i] = &gnode{id: i}
	}
	for from, tos := range edges {
		for _, to := range tos {
			all[from].adj = append(all[from].adj, all[to])
		}
	}
	return all
}

// newDiamondGraph builds:
//
//	0 -> 1, 2
//	1 -> 3
//	2 -> 3
//	3 -> 0 (cycle back to the root)
func newDiamondGraph() []*gnode {
	return newGraph(4, map[int][]int{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {0},
	})
}

func treeIDs(it seq.Iterator[*tnode]) []int {
	var out []int
	for it.Next() {
		out = append(out, it.Item().id)
	}
	return out
}

func graphIDs(it seq.Iterator[*gnode]) []int {
	var out []int
	for it.Next() {
		out = append(out, it.Item().id)
	}
	return out
}

func binaryIDs(it seq.Iterator[*bnode]) []int {
	var out []int
	for it.Next() {
		out = append(out, it.Item().id)
	}
	return out
}
