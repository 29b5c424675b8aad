package rtree

import "errors"

var (
	ErrInvalidNodeCapacity = errors.New("max keys per node must be at least 3")
	ErrEmptyPolygon        = errors.New("polygon has no edges")

	// Node contract violations. The tree never triggers these itself; seeing
	// one means the node API was misused.
	ErrNodeFull       = errors.New("node is at capacity")
	ErrEmptyNode      = errors.New("node has no children")
	ErrSlotOutOfRange = errors.New("child slot out of range")
)
