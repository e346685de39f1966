// Package config assembles the module's validated run-time parameters — the
// R-tree fanout bounds and the shared geometric tolerance — from a small
// functional-options surface, rather than requiring callers to poke at
// rtree.Params and geom.Tolerance directly.
package config

import (
	"fmt"

	"github.com/rkeat/hullrtree/errs"
	"github.com/rkeat/hullrtree/geom"
	"github.com/rkeat/hullrtree/rtree"
)

// defaultMin and defaultMax are the fanout bounds used when a caller states
// no preference; they match cmd/hullindex's -m and -M flag defaults.
const (
	defaultMin = 2
	defaultMax = 8
)

// Config is the validated, fully-resolved set of module-level parameters.
type Config struct {
	Params    rtree.Params
	Tolerance float64
}

// Option configures a Config before New validates and builds it.
type Option func(*options)

type options struct {
	m, M      int
	tolerance float64
}

// WithFanout sets the R-tree's minimum and maximum node fanout. Unset, New
// defaults to (2, 8).
func WithFanout(m, M int) Option {
	return func(o *options) { o.m, o.M = m, M }
}

// WithTolerance overrides the module's geometric comparison tolerance ε.
// Unset, New defaults to geom.Tolerance's current value.
func WithTolerance(eps float64) Option {
	return func(o *options) { o.tolerance = eps }
}

// New resolves opts against the module's defaults and validates the
// result, returning an ArgumentError if the fanout bounds or tolerance are
// invalid.
func New(opts ...Option) (Config, error) {
	o := options{m: defaultMin, M: defaultMax, tolerance: geom.Tolerance}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.tolerance > 0) {
		return Config{}, fmt.Errorf("%w: tolerance must be positive, got %v", errs.ErrArgument, o.tolerance)
	}
	params, err := rtree.NewParams(o.m, o.M)
	if err != nil {
		return Config{}, err
	}
	return Config{Params: params, Tolerance: o.tolerance}, nil
}

// Apply installs cfg's tolerance as the module-wide geom.Tolerance. Callers
// content with the default tolerance can skip this and use cfg.Params
// directly.
func (c Config) Apply() {
	geom.Tolerance = c.Tolerance
}
