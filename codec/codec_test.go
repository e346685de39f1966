package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkeat/hullrtree/geom"
)

func TestDecodeHullDocument(t *testing.T) {
	raw := `{"convex hulls": [
		{"ID": 1, "apexes": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 0, "y": 1}]},
		{"ID": 2, "apexes": [{"x": 5, "y": 5}, {"x": 6, "y": 5}, {"x": 6, "y": 6}]}
	]}`

	doc, err := DecodeHullDocument(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, doc.ConvexHulls, 2)
	assert.Equal(t, 1, doc.ConvexHulls[0].ID)
	assert.Equal(t, []geom.Point{{0, 0}, {1, 0}, {0, 1}}, doc.ConvexHulls[0].Points())
}

func TestDecodeHullDocumentRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeHullDocument(strings.NewReader("not json"))
	require.Error(t, err)
}
