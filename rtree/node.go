package rtree

import "github.com/rkeat/hullrtree/geom"

// node is a single R-tree node. It holds either children (internal node)
// or entries (leaf node), but never both, and carries a non-owning back
// reference to its parent (nil for the root).
//
// bounds is stored as a float64 geom.BoundingBox rather than the teacher
// library's float32 vmath.Rectf: the module's tolerance contract (geom.
// Tolerance = 1e-9) is only meaningful at float64 precision, and every MBR
// union here must be exact to satisfy the tight-MBR invariant, not merely
// accurate to float32's ~1e-7 ULP.
type node struct {
	children []*node
	entries  []Entry

	leaf   bool
	bounds geom.BoundingBox
	parent *node
}

func newLeaf() *node {
	return &node{leaf: true, bounds: geom.OfEmpty()}
}

func newInternal() *node {
	return &node{leaf: false, bounds: geom.OfEmpty()}
}

// size returns the node's current fanout: its entry count if a leaf, its
// child count otherwise.
func (n *node) size() int {
	if n.leaf {
		return len(n.entries)
	}
	return len(n.children)
}

// addChild appends c and fixes its parent back-reference.
func (n *node) addChild(c *node) {
	c.parent = n
	n.children = append(n.children, c)
}

// removeChild removes c (by identity) from n's children.
func (n *node) removeChild(c *node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// recomputeMBR re-unions the bounds of every direct descendant, exactly (no
// slack), from scratch. Cheap for the small fanouts this tree is built for.
func (n *node) recomputeMBR() {
	bb := geom.OfEmpty()
	if n.leaf {
		for _, e := range n.entries {
			bb = bb.Union(e.BB)
		}
	} else {
		for _, c := range n.children {
			bb = bb.Union(c.bounds)
		}
	}
	n.bounds = bb
}
