package validator

import (
	"context"
	"runtime"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// TravelTimeSource resolves a one-way travel time in minutes between two
// points. travel.Oracle satisfies this interface structurally.
type TravelTimeSource interface {
	Minutes(ctx context.Context, from, to geo.Point) (float64, error)
}

// maxConcurrency caps outstanding oracle calls at min(2*NumCPU, 12), the
// same bound travel.Oracle applies to its own provider calls.
func maxConcurrency() int64 {
	n := int64(2 * runtime.NumCPU())
	if n > 12 {
		n = 12
	}
	if n < 1 {
		n = 1
	}

	return n
}

// DefaultMinBufferMin is the idle buffer below which a feasible
// transition is still flagged as a tight_buffer warning.
const DefaultMinBufferMin = 10

// Options configures one Validate call.
type Options struct {
	Travel       TravelTimeSource
	MinBufferMin int
	Ctx          context.Context
}

// DefaultOptions returns MinBufferMin matching the chain builder's
// default and a background context.
func DefaultOptions() Options {
	return Options{
		MinBufferMin: DefaultMinBufferMin,
		Ctx:          context.Background(),
	}
}
