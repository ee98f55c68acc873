package chainbuilder

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// TravelTimeSource resolves a one-way travel time in minutes between two
// points. travel.Oracle satisfies this interface structurally.
type TravelTimeSource interface {
	Minutes(ctx context.Context, from, to geo.Point) (float64, error)
}

// Default tuning constants, mirrored from the original repository's
// ILP-era configuration. WLarge dominates travel-minute weights so the
// matching objective prioritizes "arc exists" (fewer chains) over
// minimizing deadhead within the chosen matching.
const (
	DefaultMinBufferMin = 10
	DefaultWLarge       = 100000.0
)

// Options configures one Build call. Zero value is not meaningful; use
// DefaultOptions and override as needed.
type Options struct {
	// Travel resolves minute-level travel times between job endpoints.
	Travel TravelTimeSource

	// MinBufferMin is the minimum idle buffer required between the end
	// of one job and the start of the next, beyond raw travel time.
	MinBufferMin int

	// WLarge is the constant term in arc weight w_ij = WLarge - travel_ij,
	// chosen large enough that "fewer chains" always dominates "lower
	// deadhead" in the matching objective.
	WLarge float64

	// MinStartHour floors every job's shifted start; no shift may place
	// a job's occupied interval before this clock time.
	MinStartHour geo.MinutesOfDay

	// ShiftEarlier and ShiftLater bound the time-shift tolerance for
	// jobs in this block, resolved from the classifier's Window.
	ShiftEarlier int
	ShiftLater   int

	// UseMLRanking enables the logistic arc-ranking heuristic (§4.3 step
	// 6), which scores each arc and sorts the arc slice by score. It
	// never changes which arcs are feasible, and the max-flow solver does
	// not depend on arc order, so the chains Build returns are the same
	// with it on or off.
	UseMLRanking bool

	// Ctx bounds the wall-clock/cancellation scope of travel lookups
	// performed while building the feasibility graph.
	Ctx context.Context
}

// DefaultOptions returns conservative defaults with Ctx set to
// context.Background(); Travel must still be supplied by the caller.
func DefaultOptions() Options {
	return Options{
		MinBufferMin: DefaultMinBufferMin,
		WLarge:       DefaultWLarge,
		MinStartHour: geo.HHMM(5, 0),
		ShiftEarlier: 0,
		ShiftLater:   0,
		UseMLRanking: true,
		Ctx:          context.Background(),
	}
}
