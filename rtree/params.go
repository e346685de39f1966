package rtree

import (
	"fmt"
	"math"

	"github.com/rkeat/hullrtree/errs"
)

// Params bounds every non-root node's fanout: 2 <= Min <= ceil(Max/2) <= Max.
type Params struct {
	Min, Max int
}

// NewParams validates m and M and returns the corresponding Params.
func NewParams(m, M int) (Params, error) {
	if M < 2 {
		return Params{}, fmt.Errorf("%w: M must be >= 2, got %d", errs.ErrArgument, M)
	}
	maxMin := int(math.Ceil(float64(M) / 2))
	if m < 2 || m > maxMin {
		return Params{}, fmt.Errorf("%w: m must satisfy 2 <= m <= ceil(M/2) (=%d here), got %d", errs.ErrArgument, maxMin, m)
	}
	return Params{Min: m, Max: M}, nil
}
