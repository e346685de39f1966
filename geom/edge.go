package geom

import "math"

// IntersectKind classifies the outcome of Edge.Intersect.
type IntersectKind int

const (
	// NoIntersection: the segments do not meet.
	NoIntersection IntersectKind = iota
	// PointIntersection: the segments cross (or touch) at a single point.
	PointIntersection
	// OverlappingIntersection: the segments are collinear and their
	// projections overlap along a sub-segment.
	OverlappingIntersection
)

// IntersectResult is the outcome of Edge.Intersect. Points holds one entry
// for PointIntersection, two (the overlap sub-segment's endpoints) for
// OverlappingIntersection, and none for NoIntersection.
type IntersectResult struct {
	Kind   IntersectKind
	Points []Point
}

// Edge is the directed segment from A to B.
type Edge struct {
	A, B Point
}

// Intersect classifies how e and other meet, using the signed-area test:
// let r = b-a, s = d-c and denom = r x s. If |denom| < Tolerance the
// segments are parallel; they are reported as overlapping when collinear
// and their projections along r overlap, else as not intersecting.
// Otherwise t = ((c-a) x s)/denom and u = ((c-a) x r)/denom; the segments
// cross iff t, u in [-Tolerance, 1+Tolerance], at point a + t*r.
func (e Edge) Intersect(other Edge) IntersectResult {
	a, b := e.A, e.B
	c, d := other.A, other.B

	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.Cross(s)
	ca := c.Sub(a)

	if math.Abs(denom) < Tolerance {
		if math.Abs(ca.Cross(r)) >= Tolerance {
			return IntersectResult{Kind: NoIntersection}
		}
		return collinearOverlap(a, r, c, d)
	}

	t := ca.Cross(s) / denom
	u := ca.Cross(r) / denom
	if t >= -Tolerance && t <= 1+Tolerance && u >= -Tolerance && u <= 1+Tolerance {
		return IntersectResult{Kind: PointIntersection, Points: []Point{a.Add(r.Scale(t))}}
	}
	return IntersectResult{Kind: NoIntersection}
}

// collinearOverlap handles the parallel, collinear case: project c and d
// onto the line through a with direction r, and report the overlap of
// [0,1] (the span of segment a-b) with the projected [tc, td].
func collinearOverlap(a, r, c, d Point) IntersectResult {
	rr := r.Dot(r)
	if rr < Tolerance {
		return IntersectResult{Kind: NoIntersection}
	}
	tc := c.Sub(a).Dot(r) / rr
	td := d.Sub(a).Dot(r) / rr
	lo, hi := tc, td
	if lo > hi {
		lo, hi = hi, lo
	}
	start := math.Max(0, lo)
	end := math.Min(1, hi)
	if start > end+Tolerance {
		return IntersectResult{Kind: NoIntersection}
	}
	return IntersectResult{
		Kind:   OverlappingIntersection,
		Points: []Point{a.Add(r.Scale(start)), a.Add(r.Scale(end))},
	}
}
