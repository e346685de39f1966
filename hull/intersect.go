package hull

import (
	"math"
	"sort"

	"github.com/rkeat/hullrtree/geom"
)

// Intersect computes a ∩ e. It returns (nil, nil) when the hulls are
// disjoint or their overlap degenerates to fewer than 3 points (a shared
// edge or a single touching apex); both cases are reported as "no
// intersection" rather than distinguished, per this module's policy for
// degenerate overlaps.
//
// The algorithm: trivial AABB reject, then a full-containment shortcut,
// then an edge walk collecting every a-e edge crossing plus the apexes of
// each hull found inside the other, deduplicated and re-sorted by polar
// angle around their centroid to restore counter-clockwise order.
func Intersect(a, e *ConvexHull) (*ConvexHull, error) {
	if !a.BoundingBox().Overlaps(e.BoundingBox()) {
		return nil, nil
	}
	if allInside(a.points, e) {
		return newRaw(append([]geom.Point(nil), a.points...)), nil
	}
	if allInside(e.points, a) {
		return newRaw(append([]geom.Point(nil), e.points...)), nil
	}

	var pts []geom.Point
	for _, ea := range a.Edges() {
		for _, ee := range e.Edges() {
			res := ea.Intersect(ee)
			if res.Kind != geom.NoIntersection {
				pts = append(pts, res.Points...)
			}
		}
	}
	for _, p := range a.points {
		if insideClosed(p, e) {
			pts = append(pts, p)
		}
	}
	for _, p := range e.points {
		if insideClosed(p, a) {
			pts = append(pts, p)
		}
	}

	pts = dedupPoints(pts)
	pts = orient(pts)
	if len(pts) < 3 {
		return nil, nil
	}
	return newRaw(pts), nil
}

// dedupPoints removes points that are within Tolerance of one already kept.
func dedupPoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.ApproxEqual(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// orient sorts pts by polar angle around their centroid to restore
// counter-clockwise order, then drops any point that is collinear with its
// two neighbors.
func orient(pts []geom.Point) []geom.Point {
	if len(pts) < 3 {
		return pts
	}
	c := geom.Centroid(pts)
	sort.Slice(pts, func(i, j int) bool {
		return math.Atan2(pts[i].Y-c.Y, pts[i].X-c.X) < math.Atan2(pts[j].Y-c.Y, pts[j].X-c.X)
	})
	return dropCollinearRuns(pts)
}

// dropCollinearRuns removes any point whose two neighbors make it collinear
// (cross product of the adjoining edges ~ 0), collapsing runs of collinear
// points down to their endpoints.
func dropCollinearRuns(pts []geom.Point) []geom.Point {
	n := len(pts)
	if n < 3 {
		return pts
	}
	out := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		cross := cur.Sub(prev).Cross(next.Sub(cur))
		if math.Abs(cross) < geom.Tolerance {
			continue
		}
		out = append(out, cur)
	}
	return out
}
