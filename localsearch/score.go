package localsearch

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// TravelTimeSource resolves a one-way travel time in minutes between two
// points. travel.Oracle satisfies this interface structurally.
type TravelTimeSource interface {
	Minutes(ctx context.Context, from, to geo.Point) (float64, error)
}

// Weights configures the multi-objective score. Defaults emphasize bus
// count by orders of magnitude over every other term, matching the
// teacher-pack convention of a dominant term plus tie-breaking terms
// established by the chain builder's W_large arc weight.
type Weights struct {
	Buses    float64
	Deadhead float64
	Overtime float64
	Shift    float64
	Balance  float64
	Fuel     float64
	CO2      float64
}

// DefaultWeights returns the "min_buses_viability" preset: bus count
// dominates, every other term is a secondary tie-breaker.
func DefaultWeights() Weights {
	return Weights{
		Buses:    100000.0,
		Deadhead: 10.0,
		Overtime: 50.0,
		Shift:    1.0,
		Balance:  5.0,
		Fuel:     0.5,
		CO2:      0.5,
	}
}

// MaxRegularShiftMin is the per-bus working span beyond which every
// extra minute counts as overtime.
const MaxRegularShiftMin = 8 * 60

// Score computes the weighted-sum multi-objective score for chains
// (lower is better, matching the minimization direction anneal.Accept
// expects). A lower score is always preferred; Run only ever accepts
// strictly decreasing scores (or, within the caller's annealing loop,
// Metropolis-accepted increases).
//
// Complexity: O(sum of chain lengths); no oracle calls (deadhead is
// priced by haversine distance, travel is unused).
func Score(ctx context.Context, chains []schedule.Chain, travel TravelTimeSource, w Weights) (float64, error) {
	busCount := float64(len(chains))

	var totalDeadheadKM float64
	var totalOvertimeH float64
	var totalShiftMin float64
	var totalKM float64
	jobCounts := make([]float64, len(chains))

	for idx, chain := range chains {
		jobCounts[idx] = float64(chain.Len())

		var spanStart, spanEnd int
		for i, job := range chain.Jobs {
			totalShiftMin += absFloat(float64(job.TimeShiftMin))

			start := int(job.ShiftedStart())
			end := int(job.ShiftedEnd())
			if i == 0 || start < spanStart {
				spanStart = start
			}
			if i == 0 || end > spanEnd {
				spanEnd = end
			}

			if i > 0 {
				prev := chain.Jobs[i-1]
				deadheadKM := geo.HaversineKM(prev.EndLoc, job.StartLoc) * geo.TortuosityFactor
				totalDeadheadKM += deadheadKM
				totalKM += deadheadKM
			}
		}

		span := spanEnd - spanStart
		if span > MaxRegularShiftMin {
			totalOvertimeH += float64(span-MaxRegularShiftMin) / 60.0
		}
	}

	_ = travel // reserved: a future refinement may re-price deadhead via the oracle instead of haversine

	balance := variance(jobCounts)

	score := w.Buses*busCount +
		w.Deadhead*totalDeadheadKM +
		w.Overtime*totalOvertimeH +
		w.Shift*totalShiftMin +
		w.Balance*balance +
		w.Fuel*totalKM +
		w.CO2*totalKM

	return score, nil
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}

	return sumSq / float64(len(xs))
}
