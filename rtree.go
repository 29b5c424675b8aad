package rtree

import "fmt"

// RTree is an in-memory R-Tree of polygons, built one insertion at a time.
// It is not safe for concurrent use; callers must serialise writes.
type RTree struct {
	root *node

	maxKeys int
	minKeys int

	size   int
	height int

	log Logger
}

type options struct {
	logger Logger
}

// Option configures an RTree.
type Option func(*options)

// WithLogger sets the logger used to report structural changes such as
// splits and root growth. The default discards everything.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an empty RTree whose nodes hold at most maxKeysPerNode
// children. Non-root nodes hold at least maxKeysPerNode/2.
func New(maxKeysPerNode int, opts ...Option) (*RTree, error) {
	if maxKeysPerNode < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNodeCapacity, maxKeysPerNode)
	}
	o := options{logger: DiscardLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &RTree{
		maxKeys: maxKeysPerNode,
		minKeys: maxKeysPerNode / 2,
		log:     o.logger,
	}, nil
}

// Len returns the number of polygons inserted.
func (t *RTree) Len() int {
	return t.size
}

// Height returns the number of node levels above the leaf entries. An empty
// tree has height 0 and a tree whose root holds leaf entries has height 1.
func (t *RTree) Height() int {
	return t.height
}

// Bounds returns the box covering every inserted polygon. The second return
// value is false for an empty tree.
func (t *RTree) Bounds() (BBox, bool) {
	if t.root == nil {
		return BBox{}, false
	}
	return t.root.bbox, true
}

// Stats summarises the shape of a tree.
type Stats struct {
	Polygons int
	Height   int
	// Nodes counts container nodes, excluding leaf entries.
	Nodes int
	// LeafEntries counts leaf entries reachable from the root.
	LeafEntries int
	// MinFill and MaxFill are the smallest and largest child counts seen
	// across container nodes.
	MinFill, MaxFill int
}

// Stats walks the tree and reports its shape.
func (t *RTree) Stats() Stats {
	s := Stats{Polygons: t.size, Height: t.height}
	if t.root == nil {
		return s
	}
	s.MinFill = t.maxKeys
	var recurse func(*node)
	recurse = func(n *node) {
		if n.polygon != nil {
			s.LeafEntries++
			return
		}
		s.Nodes++
		if n.count < s.MinFill {
			s.MinFill = n.count
		}
		if n.count > s.MaxFill {
			s.MaxFill = n.count
		}
		for _, child := range n.children[:n.count] {
			recurse(child)
		}
	}
	recurse(t.root)
	return s
}
