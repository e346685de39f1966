// Package hull models convex 2D polygons ("convex hulls" in the sense of
// the caller-supplied input shape, not the convex-hull-of-a-point-set
// operation) and implements exact convex-convex polygon intersection.
package hull

import (
	"fmt"
	"math"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
)

// ConvexHull is a cyclic, counter-clockwise sequence of at least three
// apexes. Its edges run apex[i] -> apex[i+1 mod n].
type ConvexHull struct {
	points []geom.Point
}

// New validates points and builds a ConvexHull, reorienting it
// counter-clockwise if necessary. It rejects inputs with fewer than three
// apexes (ArgumentError), non-finite coordinates, or a polygon whose apexes
// are collinear or coincident and so enclose no area (GeometryError).
func New(points []geom.Point) (*ConvexHull, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: a hull needs at least 3 apexes, got %d", errs.ErrArgument, len(points))
	}
	for _, p := range points {
		if !p.Finite() {
			return nil, fmt.Errorf("%w: non-finite apex coordinate", errs.ErrGeometry)
		}
	}

	pts := dedupCyclic(points)
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: hull has fewer than 3 distinct apexes after removing duplicates", errs.ErrGeometry)
	}

	area := signedArea(pts)
	if math.Abs(area) < geom.Tolerance {
		return nil, fmt.Errorf("%w: hull apexes are collinear and enclose no area", errs.ErrGeometry)
	}
	if area < 0 {
		reverse(pts)
	}
	return &ConvexHull{points: pts}, nil
}

// newRaw wraps an already-valid, already-oriented point set without
// re-running New's validation. Used internally for intersection results and
// for the full-containment shortcut, where the points are known-good.
func newRaw(points []geom.Point) *ConvexHull {
	return &ConvexHull{points: points}
}

// Points returns the hull's apexes in counter-clockwise order.
func (h *ConvexHull) Points() []geom.Point {
	return h.points
}

// Edges returns the hull's oriented boundary edges, apex[i] -> apex[i+1].
func (h *ConvexHull) Edges() []geom.Edge {
	n := len(h.points)
	edges := make([]geom.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = geom.Edge{A: h.points[i], B: h.points[(i+1)%n]}
	}
	return edges
}

// BoundingBox returns the hull's axis-aligned bounding box.
func (h *ConvexHull) BoundingBox() geom.BoundingBox {
	return geom.OfPoints(h.points)
}

// Area returns the polygon's area via the shoelace formula.
func (h *ConvexHull) Area() float64 {
	return signedArea(h.points)
}

// insideClosed reports whether p lies within or on the boundary of h, using
// the closed half-plane test (cross >= -Tolerance) against every oriented
// edge of h. h must be counter-clockwise.
func insideClosed(p geom.Point, h *ConvexHull) bool {
	for _, e := range h.Edges() {
		if e.B.Sub(e.A).Cross(p.Sub(e.A)) < -geom.Tolerance {
			return false
		}
	}
	return true
}

func allInside(pts []geom.Point, h *ConvexHull) bool {
	for _, p := range pts {
		if !insideClosed(p, h) {
			return false
		}
	}
	return true
}

// signedArea computes twice the polygon's signed area via the shoelace
// formula, halved; positive for counter-clockwise orientation.
func signedArea(pts []geom.Point) float64 {
	n := len(pts)
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

func reverse(pts []geom.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// dedupCyclic removes consecutive duplicate apexes (including the
// wrap-around pair between the last and first apex).
func dedupCyclic(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].ApproxEqual(p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].ApproxEqual(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
