package geom

import "math"

// BoundingBox is an axis-aligned bounding box (minX, minY, maxX, maxY) with
// the invariant minX <= maxX && minY <= maxY. The distinguished empty value
// (returned by OfEmpty) unions as identity and has zero area.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
	empty                  bool
}

// OfEmpty returns the distinguished empty bounding box.
func OfEmpty() BoundingBox {
	return BoundingBox{empty: true}
}

// New builds a bounding box directly from its four bounds. The caller must
// ensure minX <= maxX && minY <= maxY.
func New(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// OfPoints returns the smallest bounding box containing every point in pts.
// OfEmpty is returned for an empty slice.
func OfPoints(pts []Point) BoundingBox {
	if len(pts) == 0 {
		return OfEmpty()
	}
	bb := BoundingBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		bb.MinX = math.Min(bb.MinX, p.X)
		bb.MinY = math.Min(bb.MinY, p.Y)
		bb.MaxX = math.Max(bb.MaxX, p.X)
		bb.MaxY = math.Max(bb.MaxY, p.Y)
	}
	return bb
}

// IsEmpty reports whether bb is the distinguished empty value.
func (bb BoundingBox) IsEmpty() bool {
	return bb.empty
}

// Union returns the componentwise min/max of bb and other, treating the
// empty box as identity.
func (bb BoundingBox) Union(other BoundingBox) BoundingBox {
	if bb.empty {
		return other
	}
	if other.empty {
		return bb
	}
	return BoundingBox{
		MinX: math.Min(bb.MinX, other.MinX),
		MinY: math.Min(bb.MinY, other.MinY),
		MaxX: math.Max(bb.MaxX, other.MaxX),
		MaxY: math.Max(bb.MaxY, other.MaxY),
	}
}

// Area returns (maxX-minX)*(maxY-minY), or 0 for the empty box.
func (bb BoundingBox) Area() float64 {
	if bb.empty {
		return 0
	}
	return (bb.MaxX - bb.MinX) * (bb.MaxY - bb.MinY)
}

// Enlargement returns the increase in area from merging other into bb:
// area(union(bb, other)) - area(bb).
func (bb BoundingBox) Enlargement(other BoundingBox) float64 {
	return bb.Union(other).Area() - bb.Area()
}

// Overlaps reports whether bb and other share any point, using closed
// intervals on every axis — rectangles that only touch at a boundary do
// count as overlapping.
func (bb BoundingBox) Overlaps(other BoundingBox) bool {
	if bb.empty || other.empty {
		return false
	}
	return bb.MinX <= other.MaxX && other.MinX <= bb.MaxX &&
		bb.MinY <= other.MaxY && other.MinY <= bb.MaxY
}

// Contains reports whether p lies within bb, using closed intervals.
func (bb BoundingBox) Contains(p Point) bool {
	if bb.empty {
		return false
	}
	return p.X >= bb.MinX && p.X <= bb.MaxX && p.Y >= bb.MinY && p.Y <= bb.MaxY
}
