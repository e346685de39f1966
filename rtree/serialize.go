package rtree

import "github.com/rkeat/hullrtree/geom"

// internalNodeValue is the sentinel placed in SerializedNode.Value for
// internal (non-entry) nodes. Per this module's resolution of the source's
// open question, it carries no further meaning — callers must not rely on
// it for anything beyond "this is not a leaf entry".
const internalNodeValue = -1

// SerializedNode is the recursive tree record returned by RTree.Serialize:
// a leaf entry becomes a childless node carrying the entry's id as Value;
// an internal node uses the sentinel value and lists its children.
type SerializedNode struct {
	Value    int              `json:"value"`
	BB       [4]float64       `json:"bb"`
	Children []SerializedNode `json:"children"`
}

// Serialize renders the whole tree as a SerializedNode tree.
func (t *RTree) Serialize() SerializedNode {
	return serializeNode(t.root)
}

func serializeNode(n *node) SerializedNode {
	bb := bbArray(n.bounds)
	if n.leaf {
		children := make([]SerializedNode, len(n.entries))
		for i, e := range n.entries {
			children[i] = SerializedNode{Value: e.Value, BB: bbArray(e.BB)}
		}
		return SerializedNode{Value: internalNodeValue, BB: bb, Children: children}
	}
	children := make([]SerializedNode, len(n.children))
	for i, c := range n.children {
		children[i] = serializeNode(c)
	}
	return SerializedNode{Value: internalNodeValue, BB: bb, Children: children}
}

func bbArray(bb geom.BoundingBox) [4]float64 {
	return [4]float64{bb.MinX, bb.MinY, bb.MaxX, bb.MaxY}
}
