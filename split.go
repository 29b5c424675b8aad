package rtree

// splitNode distributes the children of the full node n, plus entry, between
// two new nodes using the quadratic split. n itself is left untouched.
func (t *RTree) splitNode(n, entry *node) (*node, *node, error) {
	entries := make([]*node, 0, n.count+1)
	entries = append(entries, n.children[:n.count]...)
	entries = append(entries, entry)

	s1, s2 := pickSeeds(entries)
	// Remove the later index first so the earlier one stays valid.
	seed1, seed2 := entries[s1], entries[s2]
	entries = append(entries[:s2], entries[s2+1:]...)
	entries = append(entries[:s1], entries[s1+1:]...)

	g1, g2 := newNode(t.maxKeys), newNode(t.maxKeys)
	if err := g1.attachChild(seed1); err != nil {
		return nil, nil, err
	}
	if err := g2.attachChild(seed2); err != nil {
		return nil, nil, err
	}

	for len(entries) > 0 {
		e := entries[len(entries)-1]
		entries = entries[:len(entries)-1]
		if err := chooseGroup(g1, g2, e.bbox).attachChild(e); err != nil {
			return nil, nil, err
		}

		// Once a group can only reach the minimum by taking everything left
		// over, it gets everything left over.
		var short *node
		switch remaining := len(entries); {
		case remaining == 0:
		case remaining == t.minKeys-g1.count:
			short = g1
		case remaining == t.minKeys-g2.count:
			short = g2
		}
		if short != nil {
			for _, e := range entries {
				if err := short.attachChild(e); err != nil {
					return nil, nil, err
				}
			}
			entries = nil
		}
	}

	t.log.Debug("rtree: split node",
		"leaf", g1.isLeaf(), "group1", g1.count, "group2", g2.count)
	return g1, g2, nil
}

// pickSeeds returns the indexes (i < j) of the pair of entries that wastes
// the most area when combined, measured as the enlargement of the first
// entry's box by the second. The first such pair found wins ties.
func pickSeeds(entries []*node) (int, int) {
	s1, s2 := 0, 1
	worst := -1.0
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			d := entries[i].enlargement(entries[j].bbox)
			if d > worst {
				worst = d
				s1, s2 = i, j
			}
		}
	}
	return s1, s2
}

// chooseGroup picks the group that needs the least enlargement to cover bb.
// Ties go to the group with the smaller resulting area, then to the group
// with fewer children, then to g1.
func chooseGroup(g1, g2 *node, bb BBox) *node {
	d1, d2 := g1.enlargement(bb), g2.enlargement(bb)
	switch {
	case d1 < d2:
		return g1
	case d2 < d1:
		return g2
	}
	a1, a2 := g1.bbox.Merge(bb).Area(), g2.bbox.Merge(bb).Area()
	switch {
	case a1 < a2:
		return g1
	case a2 < a1:
		return g2
	}
	if g2.count < g1.count {
		return g2
	}
	return g1
}
