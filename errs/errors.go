// Package errs defines the sentinel error set shared by every package in
// this module. All algorithms return these sentinels (wrapped with detail
// via fmt.Errorf's %w) rather than ad-hoc error strings, and callers are
// expected to match them with errors.Is.
package errs

import "errors"

var (
	// ErrArgument marks a caller mistake: out-of-range m/M, a malformed
	// entry row, or a hull with fewer than three apexes.
	ErrArgument = errors.New("hullrtree: invalid argument")

	// ErrGeometry marks an input that is well-shaped but geometrically
	// unusable: non-finite coordinates, or a degenerate polygon that the
	// algorithm cannot classify (collinear-only or duplicate-only apexes).
	ErrGeometry = errors.New("hullrtree: invalid geometry")

	// ErrInternal marks a broken invariant — a bug in this module, not in
	// the caller's input. It should never be observed in practice.
	ErrInternal = errors.New("hullrtree: internal invariant violated")
)
