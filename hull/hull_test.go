package hull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
)

func square(minX, minY, maxX, maxY float64) []geom.Point {
	return []geom.Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
}

func TestNewRejectsTooFewApexes(t *testing.T) {
	_, err := New([]geom.Point{{0, 0}, {1, 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrArgument)
}

func TestNewRejectsNonFiniteCoordinates(t *testing.T) {
	pts := square(0, 0, 1, 1)
	pts[0].X = math.NaN()
	_, err := New(pts)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrGeometry)
}

func TestNewRejectsCollinearApexes(t *testing.T) {
	_, err := New([]geom.Point{{0, 0}, {1, 0}, {2, 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrGeometry)
}

func TestNewReordersClockwiseInputToCCW(t *testing.T) {
	cw := []geom.Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}} // clockwise square
	h, err := New(cw)
	require.NoError(t, err)
	assert.Greater(t, signedArea(h.Points()), 0.0)
}

func TestNewDedupsConsecutiveDuplicates(t *testing.T) {
	pts := []geom.Point{{0, 0}, {0, 0}, {1, 0}, {1, 1}, {0, 1}}
	h, err := New(pts)
	require.NoError(t, err)
	assert.Len(t, h.Points(), 4)
}

func TestBoundingBox(t *testing.T) {
	h, err := New(square(0, 0, 2, 3))
	require.NoError(t, err)
	bb := h.BoundingBox()
	assert.Equal(t, 0.0, bb.MinX)
	assert.Equal(t, 0.0, bb.MinY)
	assert.Equal(t, 2.0, bb.MaxX)
	assert.Equal(t, 3.0, bb.MaxY)
}

func TestAreaOfUnitSquare(t *testing.T) {
	h, err := New(square(0, 0, 1, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, h.Area(), 1e-9)
}
