package traverse

import "go.lepak.sg/traversal/seq"

// InOrder is a left-to-right in-order iterator over a binary shape,
// yielding each node with its Position. Left and Right are each
// called exactly once per reachable node.
//
// Recursive in-order iteration looks like this:
//
//	func visit(n N, f func(N)) {
//		visit(n.Left, f)
//		f(n)
//		visit(n.Right, f)
//	}
//
// The frame stack below replicates the call stack: each frame
// remembers which directions it has already descended. A node is
// emitted either when its left descent comes up empty, or when the
// walk returns to it from its left subtree.
type InOrder[N BinaryTreeNode[N]] struct {
	root     N
	stack    []inOrderFrame[N]
	started  bool
	finished bool
	cur      *Position[N]
}

type inOrderFrame[N any] struct {
	node               N
	goneLeft, goneRight bool
}

// NewInOrder creates an in-order iterator over the binary shape
// rooted at root. The shape must be acyclic.
func NewInOrder[N BinaryTreeNode[N]](root N) *InOrder[N] {
	return &InOrder[N]{root: root}
}

func (i *InOrder[N]) push(n N) {
	i.stack = append(i.stack, inOrderFrame[N]{node: n})
}

func (i *InOrder[N]) pop() {
	i.stack = i.stack[:len(i.stack)-1]
}

// emit snapshots the top frame's node as the current item.
// Every frame below the top is one of its ancestors, root first.
func (i *InOrder[N]) emit() bool {
	anc := make([]N, len(i.stack)-1)
	for j := range anc {
		anc[j] = i.stack[j].node
	}
	i.cur = &Position[N]{
		Node:      i.stack[len(i.stack)-1].node,
		Ancestors: anc,
	}
	return true
}

// Next advances to the next node in in-order.
func (i *InOrder[N]) Next() bool {
	if i.finished {
		return false
	}

	if !i.started {
		i.started = true
		var zero N
		if i.root == zero {
			i.finished = true
			return false
		}
		i.push(i.root)
	}

	for len(i.stack) > 0 {
		top := &i.stack[len(i.stack)-1]

		if !top.goneLeft {
			top.goneLeft = true
			if l, ok := top.node.Left(); ok {
				i.push(l)
				continue
			}
			// no left subtree: this node comes first
			return i.emit()
		}

		if !top.goneRight {
			top.goneRight = true
			if r, ok := top.node.Right(); ok {
				i.push(r)
				continue
			}
		}

		// both sides explored; walk back up
		i.pop()
		for len(i.stack) > 0 {
			p := &i.stack[len(i.stack)-1]
			if !p.goneRight {
				// returned from p's left subtree: p is next
				return i.emit()
			}
			i.pop()
		}
	}

	i.finished = true
	return false
}

// Item returns the Position of the node Next arrived at.
func (i *InOrder[N]) Item() *Position[N] {
	return i.cur
}

var _ seq.Iterator[*Position[*inOrderProbe]] = (*InOrder[*inOrderProbe])(nil)

// inOrderProbe only instantiates the compile-time assertion above.
type inOrderProbe struct{}

func (*inOrderProbe) Left() (*inOrderProbe, bool)  { return nil, false }
func (*inOrderProbe) Right() (*inOrderProbe, bool) { return nil, false }
