package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkeat/hullrtree/geom"
)

func TestPickSeedsChoosesMaxWastePair(t *testing.T) {
	bounds := []geom.BoundingBox{
		box(0, 0, 1, 1),
		box(0.5, 0.5, 1.5, 1.5), // close to 0, low waste with it
		box(10, 10, 11, 11),     // far from both, max waste with either
	}
	i, j := pickSeeds(bounds)
	assert.ElementsMatch(t, []int{0, 2}, []int{i, j})
}

// Splitting a leaf with Max+1 entries must respect both group minimums and
// every original entry must land in exactly one of the two resulting nodes.
func TestQuadraticSplitRespectsMinimumAndPreservesEntries(t *testing.T) {
	params, err := NewParams(2, 4)
	require.NoError(t, err)

	n := newLeaf()
	for i := 0; i < 5; i++ {
		x := float64(i) * 10
		n.entries = append(n.entries, Entry{Value: i, BB: box(x, x, x+1, x+1)})
	}

	g1, g2, err := quadraticSplit(n, params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g1.size(), params.Min)
	assert.GreaterOrEqual(t, g2.size(), params.Min)
	assert.Equal(t, 5, g1.size()+g2.size())

	seen := map[int]bool{}
	for _, e := range g1.entries {
		seen[e.Value] = true
	}
	for _, e := range g2.entries {
		seen[e.Value] = true
	}
	assert.Len(t, seen, 5)
}

func TestQuadraticSplitOnInternalNodeFixesParentBackReferences(t *testing.T) {
	params, err := NewParams(2, 4)
	require.NoError(t, err)

	n := newInternal()
	for i := 0; i < 5; i++ {
		x := float64(i) * 10
		child := newLeaf()
		child.entries = append(child.entries, Entry{Value: i, BB: box(x, x, x+1, x+1)})
		child.recomputeMBR()
		n.children = append(n.children, child)
	}

	g1, g2, err := quadraticSplit(n, params)
	require.NoError(t, err)
	for _, c := range g1.children {
		assert.Same(t, g1, c.parent)
	}
	for _, c := range g2.children {
		assert.Same(t, g2, c.parent)
	}
}

// A split where the minimum fanout cannot be satisfied (Min above what the
// overfull node can supply) must surface as an InternalError, not silently
// return undersized groups.
func TestQuadraticSplitReportsInternalErrorOnBrokenInvariant(t *testing.T) {
	n := newLeaf()
	for i := 0; i < 5; i++ {
		x := float64(i) * 10
		n.entries = append(n.entries, Entry{Value: i, BB: box(x, x, x+1, x+1)})
	}

	// Min = 3 cannot be met by both groups when splitting 5 entries into 2.
	_, _, err := quadraticSplit(n, Params{Min: 3, Max: 4})
	require.Error(t, err)
}
