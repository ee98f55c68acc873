package merger

import (
	"context"
	"errors"
	"sort"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/qmatrix"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// ErrNoChains is returned when Merge is called with an empty tail or
// head slice; there is nothing to pair.
var ErrNoChains = errors.New("merger: no chains to merge")

// TravelTimeSource resolves a one-way travel time in minutes between two
// points. travel.Oracle satisfies this interface structurally.
type TravelTimeSource interface {
	Minutes(ctx context.Context, from, to geo.Point) (float64, error)
}

// Default tuning constants for the merge cost function, a weighted sum
// IdleGapWeight*idle minutes + DeadheadWeight*deadhead km; with these
// defaults one idle minute costs as much as 4 km of deadhead.
const (
	DefaultIdleGapWeight  = 1.0
	DefaultDeadheadWeight = 0.25

	// MaxIdleGapMin bounds how long a bus may sit idle between an
	// earlier chain's tail and a later chain's head before the pairing
	// is considered infeasible rather than merely expensive.
	DefaultMaxIdleGapMin = 180
)

// Options configures one Merge call.
type Options struct {
	Travel         TravelTimeSource
	IdleGapWeight  float64
	DeadheadWeight float64
	MaxIdleGapMin  int
	Ctx            context.Context
}

// DefaultOptions returns the tuning defaults documented on the constants
// above.
func DefaultOptions() Options {
	return Options{
		IdleGapWeight:  DefaultIdleGapWeight,
		DeadheadWeight: DefaultDeadheadWeight,
		MaxIdleGapMin:  DefaultMaxIdleGapMin,
		Ctx:            context.Background(),
	}
}

// pairCost holds the components behind one (earlier, later) chain
// pairing. Only feasible is read after the Hungarian solve; equal-cost
// assignments are not tie-broken by idle gap, deadhead or chain ID, the
// solver's row/column scan order decides among them.
type pairCost struct {
	feasible    bool
	idleGapMin  int
	deadheadKM  float64
	cost        float64
}

// Merge finds a maximum-weight feasible pairing between earlier chain
// tails and later chain heads and splices each matched pair end-to-end
// with Chain.Concat, following the Hungarian assignment computed over a
// cost matrix that penalizes idle gap and deadhead distance (§4.4).
// Chains in earlier with no feasible successor are returned unmerged, as
// are chains in later with no feasible predecessor.
//
// Complexity: O(n^3) for the assignment solve, where n = max(len(earlier),
// len(later)); O(n*m) oracle calls to build the cost matrix.
func Merge(earlier, later []schedule.Chain, opts Options) ([]schedule.Chain, error) {
	if len(earlier) == 0 || len(later) == 0 {
		return nil, ErrNoChains
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}

	n := len(earlier)
	m := len(later)
	size := n
	if m > size {
		size = m
	}

	cost, err := qmatrix.NewDense(size, size)
	if err != nil {
		return nil, err
	}

	costs := make([][]pairCost, n)
	for i := range costs {
		costs[i] = make([]pairCost, m)
	}

	for i, a := range earlier {
		for j, b := range later {
			pc, err := evaluatePair(opts.Ctx, a, b, opts)
			if err != nil {
				return nil, err
			}
			costs[i][j] = pc

			c := infeasibleCost
			if pc.feasible {
				c = pc.cost
			}
			if err := cost.Set(i, j, c); err != nil {
				return nil, err
			}
		}
	}
	for i := n; i < size; i++ {
		for j := 0; j < size; j++ {
			if err := cost.Set(i, j, infeasibleCost); err != nil {
				return nil, err
			}
		}
	}
	for j := m; j < size; j++ {
		for i := 0; i < size; i++ {
			if err := cost.Set(i, j, infeasibleCost); err != nil {
				return nil, err
			}
		}
	}

	assignment, err := solveAssignment(cost)
	if err != nil {
		return nil, err
	}

	usedLater := make([]bool, m)
	result := make([]schedule.Chain, 0, n+m)

	for i, j := range assignment {
		if i >= n || j < 0 || j >= m || !costs[i][j].feasible {
			continue
		}
		result = append(result, earlier[i].Concat(later[j]))
		usedLater[j] = true
	}

	matchedEarlier := make([]bool, n)
	for i, j := range assignment {
		if i < n && j >= 0 && j < m && costs[i][j].feasible {
			matchedEarlier[i] = true
		}
	}
	for i, chain := range earlier {
		if !matchedEarlier[i] {
			result = append(result, chain)
		}
	}
	for j, chain := range later {
		if !usedLater[j] {
			result = append(result, chain)
		}
	}

	sort.SliceStable(result, func(a, b int) bool { return result[a].ID < result[b].ID })

	return result, nil
}

// evaluatePair scores one candidate (earlier, later) pairing: the idle
// gap between the earlier chain's last job and the later chain's first
// job, and the deadhead distance a bus must drive between them. A
// pairing that would require the bus to travel backward in time, or
// whose idle gap exceeds MaxIdleGapMin, is marked infeasible.
func evaluatePair(ctx context.Context, a, b schedule.Chain, opts Options) (pairCost, error) {
	tail := a.Tail()
	head := b.Head()

	travelMin, err := opts.Travel.Minutes(ctx, tail.EndLoc, head.StartLoc)
	if err != nil {
		return pairCost{}, err
	}

	gapMin := head.ShiftedStart().Sub(tail.ShiftedEnd())
	if gapMin < 0 {
		return pairCost{feasible: false}, nil
	}
	if gapMin-int(travelMin) < 0 {
		return pairCost{feasible: false}, nil
	}
	if gapMin > opts.MaxIdleGapMin {
		return pairCost{feasible: false}, nil
	}

	deadheadKM := geo.HaversineKM(tail.EndLoc, head.StartLoc) * geo.TortuosityFactor

	cost := opts.IdleGapWeight*float64(gapMin) + opts.DeadheadWeight*deadheadKM

	return pairCost{
		feasible:   true,
		idleGapMin: gapMin,
		deadheadKM: deadheadKM,
		cost:       cost,
	}, nil
}
