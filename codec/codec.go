// Package codec decodes the JSON hull documents consumed by cmd/hullindex.
// Loaders are explicitly out of the core's scope (callers are expected to
// supply coordinate arrays directly); this is a thin ambient convenience
// for the CLI, mirroring the shape of the original load_json harness.
package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
)

// ApexRecord is a single (x, y) apex as it appears in a hull document.
type ApexRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HullRecord is one convex hull entry as it appears in a hull document.
type HullRecord struct {
	ID     int          `json:"ID"`
	Apexes []ApexRecord `json:"apexes"`
}

// HullDocument is the top-level JSON shape read by cmd/hullindex:
// {"convex hulls": [{"ID": int, "apexes": [{"x":.., "y":..}]}]}.
type HullDocument struct {
	ConvexHulls []HullRecord `json:"convex hulls"`
}

// DecodeHullDocument reads and parses a HullDocument from r.
func DecodeHullDocument(r io.Reader) (HullDocument, error) {
	var doc HullDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return HullDocument{}, fmt.Errorf("%w: decoding hull document: %v", errs.ErrArgument, err)
	}
	return doc, nil
}

// Points converts a hull record's apex list into geom.Points.
func (h HullRecord) Points() []geom.Point {
	pts := make([]geom.Point, len(h.Apexes))
	for i, a := range h.Apexes {
		pts[i] = geom.Point{X: a.X, Y: a.Y}
	}
	return pts
}
