package lns

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/anneal"
	"github.com/odinx-svg/bus-route-optimizer-sub000/localsearch"
)

// TravelTimeSource resolves a one-way travel time in minutes between two
// points. travel.Oracle satisfies this interface structurally.
type TravelTimeSource interface {
	Minutes(ctx context.Context, from, to geo.Point) (float64, error)
}

// DestroyStrategy selects how jobs are removed from the current
// candidate at the start of one LNS iteration.
type DestroyStrategy int

const (
	// DestroyRandom removes a uniformly random subset of jobs.
	DestroyRandom DestroyStrategy = iota
	// DestroyWorst removes the highest-deadhead jobs, ranking jobs in
	// under-loaded chains (chains shorter than the mean chain length)
	// ahead by a fixed score bonus.
	DestroyWorst
	// DestroyRelated removes a seed job plus its nearest neighbors by
	// time and geography, with a relatedness bonus for same-school or
	// same-route-type pairs (Shaw removal).
	DestroyRelated
)

// String renders the strategy name for logging.
func (d DestroyStrategy) String() string {
	switch d {
	case DestroyRandom:
		return "random"
	case DestroyWorst:
		return "worst"
	case DestroyRelated:
		return "related"
	default:
		return "unknown"
	}
}

// RepairStrategy selects how destroyed jobs are reinserted.
type RepairStrategy int

const (
	// RepairGreedy inserts each unassigned job at its single best
	// feasible position, processed in input order.
	RepairGreedy RepairStrategy = iota
	// RepairRegret2 inserts the job whose (second-best - best) insertion
	// cost gap is largest first, to avoid starving jobs with only one
	// good slot.
	RepairRegret2
)

// String renders the strategy name for logging.
func (r RepairStrategy) String() string {
	switch r {
	case RepairGreedy:
		return "greedy"
	case RepairRegret2:
		return "regret2"
	default:
		return "unknown"
	}
}

// Default tuning constants, per spec: min_buses orders of magnitude above
// the rest (inherited via localsearch.DefaultWeights), moderate destroy
// rate bounds, and a destroy/cooling schedule borrowed from
// internal/anneal.
const (
	DefaultMinDestroyRate        = 0.1
	DefaultMaxDestroyRate        = 0.4
	DefaultDestroyRate           = 0.2
	DefaultAdaptThreshold        = 0.2 // improvement ratio over a window that triggers adaptation
	DefaultMaxIterations         = 200
	DefaultMaxNoImprovement      = 40
	DefaultMinBufferMin          = 10
)

// Options configures one Run call.
type Options struct {
	Travel           TravelTimeSource
	Weights          localsearch.Weights
	MinBufferMin     int
	DestroyStrategy  DestroyStrategy
	RepairStrategy   RepairStrategy
	MinDestroyRate   float64
	MaxDestroyRate   float64
	DestroyRate      float64
	AdaptThreshold   float64
	MaxIterations    int
	MaxNoImprovement int
	Seed             int64
	Schedule         anneal.Schedule
	Ctx              context.Context
}

// DefaultOptions returns the tuning defaults documented on the package
// constants above.
func DefaultOptions() Options {
	return Options{
		Weights:          localsearch.DefaultWeights(),
		MinBufferMin:     DefaultMinBufferMin,
		DestroyStrategy:  DestroyRelated,
		RepairStrategy:   RepairRegret2,
		MinDestroyRate:   DefaultMinDestroyRate,
		MaxDestroyRate:   DefaultMaxDestroyRate,
		DestroyRate:      DefaultDestroyRate,
		AdaptThreshold:   DefaultAdaptThreshold,
		MaxIterations:    DefaultMaxIterations,
		MaxNoImprovement: DefaultMaxNoImprovement,
		Schedule:         anneal.DefaultSchedule(),
		Ctx:              context.Background(),
	}
}
