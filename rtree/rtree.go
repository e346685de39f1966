package rtree

import (
	"fmt"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
)

// RTree is a height-balanced, bounded-fanout spatial index over entries'
// bounding boxes. It is not safe for concurrent use.
type RTree struct {
	params Params
	root   *node
}

// New creates an empty tree with the given fanout bounds.
func New(m, M int) (*RTree, error) {
	params, err := NewParams(m, M)
	if err != nil {
		return nil, err
	}
	return &RTree{params: params, root: newLeaf()}, nil
}

// Build constructs a tree by inserting entries, in input order, via
// repeated single-entry Insert. There is no bulk-loading heuristic.
func Build(params Params, entries []Entry) (*RTree, error) {
	t := &RTree{params: params, root: newLeaf()}
	for _, e := range entries {
		if err := t.Insert(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert adds a single entry: ChooseLeaf finds the best leaf, the entry is
// placed there, and AdjustTree walks back to the root, splitting any node
// that now holds more than M children and recomputing MBRs along the way.
// On argument-validation failure the tree is left exactly as it was before
// the call; an InternalError from AdjustTree indicates a broken invariant
// and the tree's state afterward should not be relied upon.
func (t *RTree) Insert(e Entry) error {
	if e.BB.IsEmpty() {
		return fmt.Errorf("%w: entry has an empty bounding box", errs.ErrArgument)
	}
	leaf := t.chooseLeaf(e.BB)
	leaf.entries = append(leaf.entries, e)
	return t.adjustTree(leaf)
}

// chooseLeaf descends from the root, picking at each internal node the
// child whose MBR needs the least enlargement to contain bbox, breaking
// ties by smaller current area and then by lower child index.
func (t *RTree) chooseLeaf(bbox geom.BoundingBox) *node {
	cur := t.root
	for !cur.leaf {
		best := 0
		bestEnlargement := cur.children[0].bounds.Enlargement(bbox)
		bestArea := cur.children[0].bounds.Area()
		for i := 1; i < len(cur.children); i++ {
			c := cur.children[i]
			enlargement := c.bounds.Enlargement(bbox)
			area := c.bounds.Area()
			if enlargement < bestEnlargement || (enlargement == bestEnlargement && area < bestArea) {
				best, bestEnlargement, bestArea = i, enlargement, area
			}
		}
		cur = cur.children[best]
	}
	return cur
}

// adjustTree walks from n up to the root, recomputing each node's MBR and
// splitting any node that now holds more than M entries/children. A split
// at the root grows the tree by one level; parent back-references are
// re-established before the function returns. It reports an InternalError
// if a split ever violates the minimum-fanout invariant.
func (t *RTree) adjustTree(n *node) error {
	cur := n
	for cur != nil {
		cur.recomputeMBR()
		if cur.size() <= t.params.Max {
			cur = cur.parent
			continue
		}

		g1, g2, err := quadraticSplit(cur, t.params)
		if err != nil {
			return err
		}
		parent := cur.parent
		if parent == nil {
			newRoot := newInternal()
			newRoot.addChild(g1)
			newRoot.addChild(g2)
			newRoot.recomputeMBR()
			t.root = newRoot
			return nil
		}
		parent.removeChild(cur)
		parent.addChild(g1)
		parent.addChild(g2)
		cur = parent
	}
	return nil
}

// Height returns the tree's depth (the number of edges from root to leaf);
// an empty tree has height 0.
func (t *RTree) Height() int {
	h := 0
	cur := t.root
	for !cur.leaf {
		h++
		if len(cur.children) == 0 {
			break
		}
		cur = cur.children[0]
	}
	return h
}

// Size returns the total number of entries stored in the tree.
func (t *RTree) Size() int {
	var walk func(n *node) int
	walk = func(n *node) int {
		if n.leaf {
			return len(n.entries)
		}
		total := 0
		for _, c := range n.children {
			total += walk(c)
		}
		return total
	}
	return walk(t.root)
}
