package rtree

import "github.com/paulmach/orb"

// Edge is a single polygon edge between two endpoints.
type Edge struct {
	From, To orb.Point
}

// Polygon is anything that can be indexed by the tree. Its bounding box is
// derived from the endpoints of its edges.
type Polygon interface {
	Edges() []Edge
}

// OrbPolygon adapts an orb.Polygon to the Polygon interface. Only the outer
// ring contributes edges, since holes never extend the bounding box.
type OrbPolygon struct {
	orb.Polygon
}

// Edges returns the edges of the outer ring in order. The ring is treated as
// closed whether or not its last point repeats the first.
func (p OrbPolygon) Edges() []Edge {
	if len(p.Polygon) == 0 {
		return nil
	}
	ring := p.Polygon[0]
	switch len(ring) {
	case 0:
		return nil
	case 1:
		return []Edge{{From: ring[0], To: ring[0]}}
	}
	edges := make([]Edge, 0, len(ring))
	for i := 0; i+1 < len(ring); i++ {
		edges = append(edges, Edge{From: ring[i], To: ring[i+1]})
	}
	if !ring.Closed() {
		edges = append(edges, Edge{From: ring[len(ring)-1], To: ring[0]})
	}
	return edges
}

// polygonBBox derives the smallest box containing every edge endpoint.
func polygonBBox(p Polygon) (BBox, error) {
	edges := p.Edges()
	if len(edges) == 0 {
		return BBox{}, ErrEmptyPolygon
	}
	points := make(orb.MultiPoint, 0, 2*len(edges))
	for _, e := range edges {
		points = append(points, e.From, e.To)
	}
	return BBoxFromBound(points.Bound()), nil
}
