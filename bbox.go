package rtree

import (
	"math"

	"github.com/paulmach/orb"
)

// BBox is an axis-aligned bounding box described by two corners. Y grows
// upwards, so LeftTop holds the larger Y and RightBottom the smaller one.
type BBox struct {
	LeftTop     orb.Point
	RightBottom orb.Point
}

// BBoxFromBound converts an orb.Bound into a BBox.
func BBoxFromBound(b orb.Bound) BBox {
	return BBox{
		LeftTop:     orb.Point{b.Min.X(), b.Max.Y()},
		RightBottom: orb.Point{b.Max.X(), b.Min.Y()},
	}
}

// Bound converts the box back into an orb.Bound.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.LeftTop.X(), b.RightBottom.Y()},
		Max: orb.Point{b.RightBottom.X(), b.LeftTop.Y()},
	}
}

func (b BBox) minX() float64 { return b.LeftTop.X() }
func (b BBox) maxX() float64 { return b.RightBottom.X() }
func (b BBox) minY() float64 { return b.RightBottom.Y() }
func (b BBox) maxY() float64 { return b.LeftTop.Y() }

// Area returns width times height.
func (b BBox) Area() float64 {
	return (b.maxX() - b.minX()) * (b.maxY() - b.minY())
}

// Merge gives the smallest bounding box containing both b and other.
func (b BBox) Merge(other BBox) BBox {
	return BBox{
		LeftTop:     orb.Point{math.Min(b.minX(), other.minX()), math.Max(b.maxY(), other.maxY())},
		RightBottom: orb.Point{math.Max(b.maxX(), other.maxX()), math.Min(b.minY(), other.minY())},
	}
}

// Enlargement returns how much additional area b would have to grow by to
// accommodate other.
func (b BBox) Enlargement(other BBox) float64 {
	return math.Abs(b.Merge(other).Area() - b.Area())
}

// Contains reports whether other lies entirely within b.
func (b BBox) Contains(other BBox) bool {
	return b.minX() <= other.minX() && b.maxX() >= other.maxX() &&
		b.minY() <= other.minY() && b.maxY() >= other.maxY()
}

// Intersects reports whether the two boxes overlap, touching edges included.
func (b BBox) Intersects(other BBox) bool {
	return true &&
		(b.minX() <= other.maxX()) && (b.maxX() >= other.minX()) &&
		(b.minY() <= other.maxY()) && (b.maxY() >= other.minY())
}
