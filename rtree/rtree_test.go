package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
)

func box(minX, minY, maxX, maxY float64) geom.BoundingBox {
	return geom.New(minX, minY, maxX, maxY)
}

func TestNewParamsValidatesBounds(t *testing.T) {
	_, err := NewParams(2, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrArgument)

	_, err = NewParams(1, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrArgument)

	p, err := NewParams(2, 4)
	require.NoError(t, err)
	assert.Equal(t, Params{Min: 2, Max: 4}, p)
}

func TestInsertRejectsEmptyBoundingBox(t *testing.T) {
	tr, err := New(2, 4)
	require.NoError(t, err)
	err = tr.Insert(Entry{Value: 1, BB: geom.OfEmpty()})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrArgument)
}

// Disjoint AABBs: no entry's search should surface any other entry.
func TestSearchFindsNothingAmongDisjointBoxes(t *testing.T) {
	entries := []Entry{
		{Value: 0, BB: box(0, 0, 1, 1)},
		{Value: 1, BB: box(10, 10, 11, 11)},
		{Value: 2, BB: box(20, 20, 21, 21)},
	}
	params, err := NewParams(2, 4)
	require.NoError(t, err)
	tr, err := Build(params, entries)
	require.NoError(t, err)

	for _, e := range entries {
		got := tr.Search(e.BB)
		assert.ElementsMatch(t, []int{e.Value}, got)
	}
}

// A chain of touching unit boxes along the X axis: box i touches box i+1 at
// a shared edge, and closed-interval overlap semantics mean every
// consecutive pair is found, but no non-adjacent pair is.
func TestSearchFindsChainedTouchingBoxes(t *testing.T) {
	n := 6
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{Value: i, BB: box(float64(i), 0, float64(i+1), 1)}
	}
	params, err := NewParams(2, 3)
	require.NoError(t, err)
	tr, err := Build(params, entries)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		want := []int{i}
		if i > 0 {
			want = append(want, i-1)
		}
		if i < n-1 {
			want = append(want, i+1)
		}
		got := tr.Search(entries[i].BB)
		assert.ElementsMatch(t, want, got)
	}

	// Depth of the serialized tree, in edges from the root record down to an
	// entry record.
	depth := 0
	for s := tr.Serialize(); len(s.Children) > 0; s = s.Children[0] {
		depth++
	}
	assert.True(t, depth == 2 || depth == 3, "expected serialized depth 2 or 3, got %d", depth)
}

func TestBuildSizeMatchesEntryCount(t *testing.T) {
	n := 100
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		x := float64(i) * 0.5
		entries[i] = Entry{Value: i, BB: box(x, x, x+0.3, x+0.3)}
	}
	params, err := NewParams(5, 10)
	require.NoError(t, err)
	tr, err := Build(params, entries)
	require.NoError(t, err)

	assert.Equal(t, n, tr.Size())
	for _, e := range entries {
		got := tr.Search(e.BB)
		assert.Contains(t, got, e.Value)
	}
}

func TestHeightOfEmptyTreeIsZero(t *testing.T) {
	tr, err := New(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Height())
	assert.Equal(t, 0, tr.Size())
}
