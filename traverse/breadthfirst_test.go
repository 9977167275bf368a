package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/traversal/seq"
)

func TestLevelOrder(t *testing.T) {
	tests := []struct {
		name string
		root func() *tnode
		want []int
	}{
		{
			name: "absent root",
			root: func() *tnode { return nil },
		},
		{
			name: "single node",
			root: func() *tnode { return &tnode{id: 0} },
			want: []int{0},
		},
		{
			name: "reference tree",
			root: func() *tnode { root, _ := newUnevenTree(); return root },
			want: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, treeIDs(LevelOrder(tt.root())))
		})
	}
}

func TestLevelOrder_ExpansionCalledOncePerNode(t *testing.T) {
	root, all := newUnevenTree()

	it := LevelOrder(root)
	for it.Next() {
	}

	for _, n := range all {
		assert.Equal(t, 1, n.expanded, "node %d", n.id)
	}
}

func TestLevelOrder_Paths(t *testing.T) {
	root, all := newUnevenTree()

	parents := map[int]int{}
	for _, n := range all {
		for _, c := range n.children {
			parents[c.id] = n.id
		}
	}

	yielded := map[int]*Path[*tnode]{}
	it := LevelOrderPaths(root)
	for it.Next() {
		p := it.Item()
		yielded[p.Node.id] = p

		assert.Equal(t, unevenDepths[p.Node.id], p.Depth(), "node %d", p.Node.id)

		if p.Node == root {
			assert.Nil(t, p.Parent)
			assert.False(t, p.Ancestors().Next())
			continue
		}

		require.NotNil(t, p.Parent)
		assert.Equal(t, parents[p.Node.id], p.Parent.Node.id, "node %d", p.Node.id)

		// ancestors walk parent-first and end at the root
		anc := seq.Collect(p.Ancestors())
		assert.Equal(t, p.Depth(), len(anc))
		assert.Same(t, p.Parent.Node, anc[0])
		assert.Same(t, root, anc[len(anc)-1])
	}
	assert.Equal(t, len(all), len(yielded))
}

// A child's chain points at the very Path instance yielded for its
// parent: chains share structure instead of copying.
func TestLevelOrder_PathsShareStructure(t *testing.T) {
	root, _ := newUnevenTree()

	yielded := map[int]*Path[*tnode]{}
	it := LevelOrderPaths(root)
	for it.Next() {
		p := it.Item()
		yielded[p.Node.id] = p
		if p.Parent != nil {
			assert.Same(t, yielded[p.Parent.Node.id], p.Parent)
		}
	}
}

func TestLevelOrder_PathFromRoot(t *testing.T) {
	root, _ := newUnevenTree()

	it := LevelOrderPaths(root)
	var last *Path[*tnode]
	for it.Next() {
		last = it.Item()
	}

	require.NotNil(t, last)
	assert.Equal(t, 10, last.Node.id)

	var ids []int
	for _, n := range last.PathFromRoot() {
		ids = append(ids, n.id)
	}
	assert.Equal(t, []int{0, 2, 6, 7, 8, 9, 10}, ids)
}

func TestGraphLevelOrder(t *testing.T) {
	t.Run("absent root", func(t *testing.T) {
		assert.Nil(t, graphIDs(GraphLevelOrder[*gnode](nil)))
	})

	t.Run("diamond with cycle", func(t *testing.T) {
		all := newDiamondGraph()
		assert.Equal(t, []int{0, 1, 2, 3}, graphIDs(GraphLevelOrder(all[0])))
	})

	t.Run("expansion called once per node", func(t *testing.T) {
		all := newDiamondGraph()
		it := GraphLevelOrder(all[0])
		for it.Next() {
		}
		for _, n := range all {
			assert.Equal(t, 1, n.expanded, "node %d", n.id)
		}
	})

	t.Run("larger ring", func(t *testing.T) {
		all := newGraph(5, map[int][]int{
			0: {1, 4},
			1: {2},
			2: {3},
			3: {4},
			4: {0},
		})
		assert.Equal(t, []int{0, 1, 4, 2, 3}, graphIDs(GraphLevelOrder(all[0])))
	})
}

// The visited set marks a node when it is first offered as a
// candidate, so a node reachable from two pending parents is only
// enqueued by the first of them.
func TestGraphLevelOrder_MarkOnOffer(t *testing.T) {
	all := newDiamondGraph()
	it := GraphLevelOrderPaths(all[0])

	var got []int
	var three *Path[*gnode]
	for it.Next() {
		got = append(got, it.Item().Node.id)
		if it.Item().Node.id == 3 {
			three = it.Item()
		}
	}

	// 3 appears once, reached through 1 (offered first), even
	// though 2 was expanded before 3 was dequeued
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.Equal(t, 1, all[3].expanded)
	require.NotNil(t, three)
	require.NotNil(t, three.Parent)
	assert.Equal(t, 1, three.Parent.Node.id)
}
