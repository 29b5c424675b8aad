package rtree

import "fmt"

// node is either a leaf entry wrapping a single polygon, or a container
// holding up to len(children) other nodes. Leaf entries never hold children.
type node struct {
	bbox BBox

	// polygon is non-nil only for leaf entries.
	polygon Polygon

	// parent is nil for the root and for leaf entries not yet attached. It is
	// only used to walk upwards when propagating splits.
	parent *node
	index  int

	children []*node
	count    int
}

func newNode(maxKeys int) *node {
	return &node{children: make([]*node, maxKeys)}
}

func newLeafEntry(p Polygon, bb BBox) *node {
	return &node{bbox: bb, polygon: p}
}

// isLeaf reports whether the children of n are leaf entries.
func (n *node) isLeaf() bool {
	return n.count > 0 && n.children[0].polygon != nil
}

func (n *node) full() bool {
	return n.count == len(n.children)
}

// enlargement returns how much n's box would grow to also cover candidate.
func (n *node) enlargement(candidate BBox) float64 {
	return n.bbox.Enlargement(candidate)
}

func (n *node) merge(candidate BBox) {
	n.bbox = n.bbox.Merge(candidate)
}

// attachChild appends child at the next free slot.
func (n *node) attachChild(child *node) error {
	if n.full() {
		return fmt.Errorf("attach child: %w (%d keys)", ErrNodeFull, n.count)
	}
	n.children[n.count] = child
	child.parent = n
	child.index = n.count
	if n.count == 0 {
		n.bbox = child.bbox
	} else {
		n.merge(child.bbox)
	}
	n.count++
	return nil
}

// replaceChildAt overwrites an occupied slot. The previous occupant is
// detached from n.
func (n *node) replaceChildAt(i int, child *node) error {
	if i < 0 || i >= n.count {
		return fmt.Errorf("replace child at %d: %w (%d keys)", i, ErrSlotOutOfRange, n.count)
	}
	if old := n.children[i]; old != nil && old != child {
		old.parent = nil
	}
	n.children[i] = child
	child.parent = n
	child.index = i
	n.merge(child.bbox)
	return nil
}

// selectMinimumEnlargementChild picks the child needing the least enlargement
// to cover bb. Ties go to the child whose enlarged box has the smaller area.
func (n *node) selectMinimumEnlargementChild(bb BBox) (*node, error) {
	if n.count == 0 {
		return nil, ErrEmptyNode
	}
	best := n.children[0]
	bestDelta := best.enlargement(bb)
	bestArea := best.bbox.Merge(bb).Area()
	for _, child := range n.children[1:n.count] {
		delta := child.enlargement(bb)
		area := child.bbox.Merge(bb).Area()
		if delta < bestDelta || (delta == bestDelta && area < bestArea) {
			best, bestDelta, bestArea = child, delta, area
		}
	}
	return best, nil
}

// release drops n's references to its children once a split has moved them
// into new nodes.
func (n *node) release() {
	for i := range n.children {
		n.children[i] = nil
	}
	n.count = 0
	n.parent = nil
}
