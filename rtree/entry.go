// Package rtree implements a height-balanced, bounded-fanout R-tree over
// axis-aligned bounding boxes: insertion with Guttman's quadratic split,
// bounding-box search, and whole-tree construction from an entry list. It
// is not safe for concurrent use, and carries no deletion support.
package rtree

import "github.com/rkeat/hullrtree/geom"

// Entry is the leaf payload of the tree: a caller-supplied integer
// identifier paired with its bounding box.
type Entry struct {
	Value int
	BB    geom.BoundingBox
}
