package pipeline

import (
	"context"
	"sort"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/qubo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// hotJob pairs a job with the deadhead cost of the leg leading into it,
// used only to rank which jobs are worth reconsidering under QUBO.
type hotJob struct {
	job         schedule.Job
	deadheadKM  float64
	sourceChain int
}

// selectHotJobs ranks every non-first job in chains by the haversine
// deadhead of the leg preceding it and returns the maxHot worst,
// per §4.7's "conflict-heavy routes" framing: a job reached by a long
// deadhead leg is the one most likely to benefit from reassignment.
func selectHotJobs(chains []schedule.Chain, maxHot int) []hotJob {
	var hot []hotJob
	for ci, c := range chains {
		for i := 1; i < c.Len(); i++ {
			prev := c.Jobs[i-1]
			job := c.Jobs[i]
			km := geo.HaversineKM(prev.EndLoc, job.StartLoc) * geo.TortuosityFactor
			hot = append(hot, hotJob{job: job, deadheadKM: km, sourceChain: ci})
		}
	}

	sort.SliceStable(hot, func(i, j int) bool { return hot[i].deadheadKM > hot[j].deadheadKM })

	if maxHot > 0 && len(hot) > maxHot {
		hot = hot[:maxHot]
	}

	return hot
}

// buildHotGroups constructs one qubo.Group per hot job: every chain
// other than the job's current one is considered as a candidate target,
// at the insertion index minimizing added deadhead (bestInsertionIn); a
// candidate is omitted if
// the travel-time oracle shows the insertion infeasible against
// minBuffer. The synthetic new-chain option is added later by
// qubo.Build itself.
//
// Complexity: O(len(hot) * len(chains)) oracle calls.
func buildHotGroups(ctx context.Context, chains []schedule.Chain, hot []hotJob, travel TravelTimeSource, minBuffer int) ([]qubo.Group, error) {
	groups := make([]qubo.Group, 0, len(hot))

	for _, h := range hot {
		group := qubo.Group{Job: h.job}

		for ci, c := range chains {
			if ci == h.sourceChain {
				continue
			}

			pos, cost, ok, err := bestInsertionIn(ctx, c, h.job, travel, minBuffer)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			group.Candidates = append(group.Candidates, qubo.Candidate{
				ChainID:  c.ID,
				Pos:      pos,
				StartMin: int(h.job.ShiftedStart()),
				EndMin:   int(h.job.ShiftedEnd()),
				Cost:     cost,
			})
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// bestInsertionIn finds the insertion index into c.Jobs minimizing the
// combined deadhead (in km) of the two legs newly created, subject to
// minBuffer feasibility against both neighbors.
func bestInsertionIn(ctx context.Context, c schedule.Chain, job schedule.Job, travel TravelTimeSource, minBuffer int) (pos int, cost float64, ok bool, err error) {
	bestPos := -1
	bestCost := 0.0

	for idx := 0; idx <= c.Len(); idx++ {
		feasible, legCost, err := feasibleAt(ctx, c.Jobs, idx, job, travel, minBuffer)
		if err != nil {
			return 0, 0, false, err
		}
		if !feasible {
			continue
		}
		if bestPos == -1 || legCost < bestCost {
			bestPos = idx
			bestCost = legCost
		}
	}

	if bestPos == -1 {
		return 0, 0, false, nil
	}

	return bestPos, bestCost, true, nil
}

func feasibleAt(ctx context.Context, jobs []schedule.Job, idx int, job schedule.Job, travel TravelTimeSource, minBuffer int) (bool, float64, error) {
	var cost float64

	if idx > 0 {
		prev := jobs[idx-1]
		minutes, err := travel.Minutes(ctx, prev.EndLoc, job.StartLoc)
		if err != nil {
			return false, 0, err
		}
		gap := job.ShiftedStart().Sub(prev.ShiftedEnd())
		if float64(gap) < minutes+float64(minBuffer) {
			return false, 0, nil
		}
		cost += geo.HaversineKM(prev.EndLoc, job.StartLoc) * geo.TortuosityFactor
	}

	if idx < len(jobs) {
		next := jobs[idx]
		minutes, err := travel.Minutes(ctx, job.EndLoc, next.StartLoc)
		if err != nil {
			return false, 0, err
		}
		gap := next.ShiftedStart().Sub(job.ShiftedEnd())
		if float64(gap) < minutes+float64(minBuffer) {
			return false, 0, nil
		}
		cost += geo.HaversineKM(job.EndLoc, next.StartLoc) * geo.TortuosityFactor
	}

	return true, cost, nil
}
