package rtree

import (
	"fmt"
	"math"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
)

// quadraticSplit partitions an overfull node (one holding M+1 entries or
// children) into two freshly built nodes using Guttman's quadratic split
// heuristic, as pinned by this module's tie-breaking rules:
//
//  1. PickSeeds: the pair with maximum waste
//     d = area(union(bb_i, bb_j)) - area(bb_i) - area(bb_j),
//     ties broken by lexicographic (i, j).
//  2. PickNext: while unassigned entries remain, if one group must take
//     every remaining entry to satisfy the minimum it does so immediately;
//     otherwise the entry maximizing |enlargement_1 - enlargement_2| is
//     assigned to the group with smaller enlargement, ties broken by
//     smaller area, then fewer current entries, then lower index.
//
// Both returned nodes inherit n's leaf flag; n itself is left untouched
// (and should be discarded by the caller). It reports an InternalError,
// rather than returning the malformed nodes, if either resulting group
// ends up smaller than params.Min — a broken invariant, not a caller
// mistake.
func quadraticSplit(n *node, params Params) (*node, *node, error) {
	count := n.size()
	bounds := make([]geom.BoundingBox, count)
	if n.leaf {
		for i, e := range n.entries {
			bounds[i] = e.BB
		}
	} else {
		for i, c := range n.children {
			bounds[i] = c.bounds
		}
	}

	s1, s2 := pickSeeds(bounds)

	g1 := newGroupNode(n.leaf)
	g2 := newGroupNode(n.leaf)
	assign(n, g1, s1)
	assign(n, g2, s2)
	g1bb, g2bb := bounds[s1], bounds[s2]

	assigned := make([]bool, count)
	assigned[s1], assigned[s2] = true, true
	remaining := count - 2

	for remaining > 0 {
		if g1.size()+remaining == params.Min {
			assignAllRemaining(n, g1, bounds, assigned, &g1bb)
			break
		}
		if g2.size()+remaining == params.Min {
			assignAllRemaining(n, g2, bounds, assigned, &g2bb)
			break
		}

		next, toFirst := pickNext(bounds, assigned, g1bb, g2bb, g1.size(), g2.size())
		if toFirst {
			assign(n, g1, next)
			g1bb = g1bb.Union(bounds[next])
		} else {
			assign(n, g2, next)
			g2bb = g2bb.Union(bounds[next])
		}
		assigned[next] = true
		remaining--
	}

	g1.recomputeMBR()
	g2.recomputeMBR()

	if g1.size() < params.Min || g2.size() < params.Min {
		return nil, nil, fmt.Errorf("%w: quadratic split produced groups of size %d and %d, below minimum %d",
			errs.ErrInternal, g1.size(), g2.size(), params.Min)
	}
	return g1, g2, nil
}

func newGroupNode(leaf bool) *node {
	if leaf {
		return newLeaf()
	}
	return newInternal()
}

// assign copies the idx'th entry/child of src into dst, fixing parent
// back-references for internal nodes.
func assign(src, dst *node, idx int) {
	if src.leaf {
		dst.entries = append(dst.entries, src.entries[idx])
	} else {
		dst.addChild(src.children[idx])
	}
}

func assignAllRemaining(src, dst *node, bounds []geom.BoundingBox, assigned []bool, dstBB *geom.BoundingBox) {
	for i := range assigned {
		if assigned[i] {
			continue
		}
		assign(src, dst, i)
		*dstBB = dstBB.Union(bounds[i])
		assigned[i] = true
	}
}

// pickSeeds returns the pair of indices with maximum pair waste, breaking
// ties lexicographically by always iterating i < j in increasing order and
// requiring a strict improvement to replace the current best.
func pickSeeds(bounds []geom.BoundingBox) (int, int) {
	best := math.Inf(-1)
	bi, bj := 0, 1
	for i := 0; i < len(bounds); i++ {
		for j := i + 1; j < len(bounds); j++ {
			waste := bounds[i].Union(bounds[j]).Area() - bounds[i].Area() - bounds[j].Area()
			if waste > best {
				best = waste
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

// pickNext selects the unassigned entry with the greatest preference for
// one group over the other, and reports which group it prefers (true =
// first group). Ties in the selection are broken by lowest index (the
// ascending scan only replaces the best on strict improvement); ties in
// the group choice are broken by smaller area, then fewer current entries.
func pickNext(bounds []geom.BoundingBox, assigned []bool, g1bb, g2bb geom.BoundingBox, g1n, g2n int) (idx int, toFirst bool) {
	bestDiff := -1.0
	idx = -1
	for i, done := range assigned {
		if done {
			continue
		}
		e1 := g1bb.Enlargement(bounds[i])
		e2 := g2bb.Enlargement(bounds[i])
		diff := e1 - e2
		if diff < 0 {
			diff = -diff
		}
		if diff > bestDiff {
			bestDiff = diff
			idx = i
		}
	}

	e1 := g1bb.Enlargement(bounds[idx])
	e2 := g2bb.Enlargement(bounds[idx])
	switch {
	case e1 < e2:
		toFirst = true
	case e2 < e1:
		toFirst = false
	default:
		a1, a2 := g1bb.Area(), g2bb.Area()
		switch {
		case a1 < a2:
			toFirst = true
		case a2 < a1:
			toFirst = false
		default:
			toFirst = g1n <= g2n
		}
	}
	return idx, toFirst
}
