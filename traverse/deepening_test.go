package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepeningLevelOrder(t *testing.T) {
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
			assert.Equal(t, tt.want, treeIDs(DeepeningLevelOrder(tt.root())))
		})
	}
}

func TestDeepeningLevelOrder_Positions(t *testing.T) {
	root, all := newUnevenTree()

	seen := 0
	it := DeepeningLevelOrderPositions(root)
	for it.Next() {
		p := it.Item()
		seen++
		assert.Equal(t, unevenDepths[p.Node.id], p.Depth(), "node %d", p.Node.id)
		if p.Depth() > 0 {
			assert.Same(t, root, p.Ancestors[0])
		}
	}
	assert.Equal(t, len(all), seen)
}

// Iterative deepening re-walks the upper levels once per pass: a
// node at depth d is expanded in every pass that descends past it.
// With a deepest node at depth 6 there are passes with bounds
// 0 through 7 (the last one comes up empty), and a node at depth d
// is expanded in those with bound greater than d.
func TestDeepeningLevelOrder_ReExpandsPerPass(t *testing.T) {
	root, all := newUnevenTree()

	it := DeepeningLevelOrder(root)
	for it.Next() {
	}

	const passes = 8 // bounds 0..7
	for _, n := range all {
		want := passes - 1 - unevenDepths[n.id]
		assert.Equal(t, want, n.expanded, "node %d at depth %d",
			n.id, unevenDepths[n.id])
	}
}

func TestGraphDeepeningLevelOrder(t *testing.T) {
	t.Run("absent root", func(t *testing.T) {
		assert.Nil(t, graphIDs(GraphDeepeningLevelOrder[*gnode](nil)))
	})

	t.Run("diamond with cycle", func(t *testing.T) {
		all := newDiamondGraph()
		assert.Equal(t, []int{0, 1, 2, 3},
			graphIDs(GraphDeepeningLevelOrder(all[0])))
	})

	t.Run("two-node ring", func(t *testing.T) {
		all := newGraph(2, map[int][]int{0: {1}, 1: {0}})
		assert.Equal(t, []int{0, 1},
			graphIDs(GraphDeepeningLevelOrder(all[0])))
	})

	t.Run("each node yielded at most once", func(t *testing.T) {
		all := newGraph(5, map[int][]int{
			0: {1, 2},
			1: {2, 3},
			2: {1, 3},
			3: {4, 0},
			4: {},
		})
		got := graphIDs(GraphDeepeningLevelOrder(all[0]))
		assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	})
}
