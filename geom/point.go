// Package geom implements the 2D vector and bounding-box primitives shared
// by the hull and rtree packages: points, edges, and axis-aligned bounding
// boxes, all compared with a single module-wide tolerance.
package geom

import "math"

// Tolerance is the absolute epsilon used by every geometric comparison in
// this module. Tests may override it to check near-degenerate cases
// (shared edges, coincident apexes) classify deterministically.
var Tolerance = 1e-9

// Point is an ordered pair (x, y) of finite real numbers.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product p . q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (p x q) = p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// ApproxEqual reports whether p and q are equal within Tolerance.
func (p Point) ApproxEqual(q Point) bool {
	return ApproxEqual(p.X, q.X) && ApproxEqual(p.Y, q.Y)
}

// Finite reports whether both coordinates are finite (not NaN or Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ApproxEqual reports whether a and b are equal within Tolerance.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Centroid returns the mean of points. The caller must pass a non-empty
// slice.
func Centroid(points []Point) Point {
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
