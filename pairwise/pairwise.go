// Package pairwise orchestrates the R-tree index and the exact convex-hull
// intersection test into the top-level findPairwiseIntersections operation:
// build the tree from hull AABBs, probe each entry's AABB against it, then
// run the exact test only on AABB-surviving candidate pairs.
package pairwise

import (
	"fmt"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
	"github.com/rkeat/hullrtree/hull"
	"github.com/rkeat/hullrtree/rtree"
)

// Pair is an index pair with I < J.
type Pair struct {
	I, J int
}

// BuildIndex computes entries (i, boxes[i]) for every box and builds an
// R-tree from them with the given fanout bounds.
func BuildIndex(m, M int, boxes []geom.BoundingBox) (*rtree.RTree, error) {
	params, err := rtree.NewParams(m, M)
	if err != nil {
		return nil, err
	}
	entries := make([]rtree.Entry, len(boxes))
	for i, bb := range boxes {
		entries[i] = rtree.Entry{Value: i, BB: bb}
	}
	return rtree.Build(params, entries)
}

// SearchOverlaps returns, for each query box, the entry indices in the
// tree whose bounding box overlaps it.
func SearchOverlaps(t *rtree.RTree, queries []geom.BoundingBox) [][]int {
	out := make([][]int, len(queries))
	for i, q := range queries {
		out[i] = t.Search(q)
	}
	return out
}

// FindPairwiseIntersections prunes the O(n^2) candidate set with an R-tree
// over the hull AABBs, then (when hulls is non-nil) runs the exact
// convex-hull intersection test on every AABB-surviving candidate pair,
// reporting only pairs whose hulls actually overlap. If hulls is nil, AABB
// overlap alone is reported. Reported pairs are deduplicated by the i < j
// convention.
func FindPairwiseIntersections(m, M int, boxes []geom.BoundingBox, hulls []*hull.ConvexHull) ([]Pair, error) {
	if hulls != nil && len(hulls) != len(boxes) {
		return nil, fmt.Errorf("%w: boxes and hulls must have the same length", errs.ErrArgument)
	}
	t, err := BuildIndex(m, M, boxes)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for i, bb := range boxes {
		for _, j := range t.Search(bb) {
			if j <= i {
				continue
			}
			if hulls != nil {
				overlap, err := hull.Intersect(hulls[i], hulls[j])
				if err != nil {
					return nil, err
				}
				if overlap == nil {
					continue
				}
			}
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs, nil
}
