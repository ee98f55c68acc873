package chainbuilder

import (
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// Arc is a feasible i->j candidate transition within a block: job i can
// end, the bus can travel to job j's start location, and the result
// clears MinBufferMin, using at most the allowed time-shift tolerance on
// both ends.
type Arc struct {
	From, To      int // indices into the Jobs slice passed to Build
	TravelMinutes float64
	BestGapMin    int // idle time available under the most favorable shift
	Weight        float64
	Score         float64 // ML ranking score, populated only if UseMLRanking
}

// buildArcs computes every feasible arc among jobs. Complexity:
// O(n^2) travel lookups in the worst case, each served from the oracle's
// cache after the first pass over a given coordinate pair.
func buildArcs(jobs []schedule.Job, opts Options) ([]Arc, error) {
	arcs := make([]Arc, 0, len(jobs))

	for i := range jobs {
		if jobs[i].Unchainable {
			continue
		}
		for j := range jobs {
			if i == j || jobs[j].Unchainable {
				continue
			}

			bestGap := bestCaseGap(jobs[i], jobs[j], opts)
			if bestGap < 0 {
				continue
			}

			travelMin, err := opts.Travel.Minutes(opts.Ctx, jobs[i].EndLoc, jobs[j].StartLoc)
			if err != nil {
				return nil, err
			}

			if float64(bestGap) < travelMin+float64(opts.MinBufferMin) {
				continue
			}
			if !respectsMinStartHour(jobs[j], opts) {
				continue
			}

			arcs = append(arcs, Arc{
				From:          i,
				To:            j,
				TravelMinutes: travelMin,
				BestGapMin:    bestGap,
				Weight:        opts.WLarge - travelMin,
			})
		}
	}

	return arcs, nil
}

// bestCaseGap returns the idle time between i and j achievable under the
// most favorable allowed shift of each (i shifted as early as possible,
// j shifted as late as possible). A negative result means no shift
// combination can make the pair adjacent-feasible even before accounting
// for travel time.
func bestCaseGap(i, j schedule.Job, opts Options) int {
	earliestEndI := i.EndAtShift(-opts.ShiftEarlier)
	latestStartJ := j.StartAtShift(opts.ShiftLater)

	return latestStartJ.Sub(earliestEndI)
}

// respectsMinStartHour reports whether j's start, even shifted as early
// as its tolerance allows, never falls before opts.MinStartHour.
func respectsMinStartHour(j schedule.Job, opts Options) bool {
	earliestStart := j.StartAtShift(-opts.ShiftEarlier)

	return earliestStart >= opts.MinStartHour
}
