package rtree

import "fmt"

// Insert adds a polygon to the tree. Identical polygons, or polygons with
// identical boxes, are kept as separate entries.
func (t *RTree) Insert(p Polygon) error {
	bb, err := polygonBBox(p)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	entry := newLeafEntry(p, bb)

	if t.root == nil {
		t.root = newNode(t.maxKeys)
		if err := t.root.attachChild(entry); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		t.height = 1
		t.size++
		t.log.Debug("rtree: created root", "max_keys", t.maxKeys)
		return nil
	}

	leaf, err := t.chooseLeafNode(bb)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	if err := t.insertAndSplit(leaf, entry); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	t.size++
	return nil
}

// chooseLeafNode descends from the root, following the child that needs the
// least enlargement, until it reaches a node holding leaf entries.
func (t *RTree) chooseLeafNode(bb BBox) (*node, error) {
	n := t.root
	for !n.isLeaf() {
		next, err := n.selectMinimumEnlargementChild(bb)
		if err != nil {
			return nil, err
		}
		n = next
	}
	return n, nil
}

// insertAndSplit attaches entry to n, splitting n if it is already full. A
// split replaces n in its parent with one half and inserts the other half
// into the parent, which may split in turn. Splitting the root grows the tree
// by one level.
func (t *RTree) insertAndSplit(n, entry *node) error {
	if !n.full() {
		if err := n.attachChild(entry); err != nil {
			return err
		}
		t.adjustBoxesUpwards(n)
		return nil
	}

	g1, g2, err := t.splitNode(n, entry)
	if err != nil {
		return err
	}

	parent := n.parent
	if parent == nil {
		root := newNode(t.maxKeys)
		if err := root.attachChild(g1); err != nil {
			return err
		}
		if err := root.attachChild(g2); err != nil {
			return err
		}
		n.release()
		t.root = root
		t.height++
		t.log.Debug("rtree: grew root", "height", t.height)
		return nil
	}

	if err := parent.replaceChildAt(n.index, g1); err != nil {
		return err
	}
	n.release()
	return t.insertAndSplit(parent, g2)
}

// adjustBoxesUpwards widens the boxes of n's ancestors to cover n's box, all
// the way to the root.
func (t *RTree) adjustBoxesUpwards(n *node) {
	for n.parent != nil {
		n.parent.merge(n.bbox)
		n = n.parent
	}
}
