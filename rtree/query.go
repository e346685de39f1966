package rtree

import "github.com/rkeat/hullrtree/geom"

// Search returns the values of every entry whose bounding box overlaps
// area. The order of emission is unspecified; duplicates cannot occur
// since each entry resides in exactly one leaf. Overlap is tested at the
// same float64 precision as the public geom.BoundingBox contract, so no
// true overlap within geom.Tolerance is lost to rounding.
func (t *RTree) Search(area geom.BoundingBox) []int {
	if area.IsEmpty() {
		return nil
	}

	var out []int
	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf {
			for _, e := range n.entries {
				if e.BB.Overlaps(area) {
					out = append(out, e.Value)
				}
			}
			return
		}
		for _, c := range n.children {
			if c.bounds.Overlaps(area) {
				walk(c)
			}
		}
	}
	walk(t.root)
	return out
}
