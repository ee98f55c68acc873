package lns

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// feasibleInsertion reports whether job can be placed at index idx among
// jobs without violating minBuffer against either neighbor.
//
// Complexity: O(1) oracle calls (at most two).
func feasibleInsertion(ctx context.Context, jobs []schedule.Job, idx int, job schedule.Job, travel TravelTimeSource, minBuffer int) (bool, float64, error) {
	cost := 0.0
	if idx > 0 {
		prev := jobs[idx-1]
		travelMin, err := travel.Minutes(ctx, prev.EndLoc, job.StartLoc)
		if err != nil {
			return false, 0, err
		}
		gap := job.ShiftedStart().Sub(prev.ShiftedEnd())
		if float64(gap) < travelMin+float64(minBuffer) {
			return false, 0, nil
		}
		cost += travelMin
	}
	if idx < len(jobs) {
		next := jobs[idx]
		travelMin, err := travel.Minutes(ctx, job.EndLoc, next.StartLoc)
		if err != nil {
			return false, 0, err
		}
		gap := next.ShiftedStart().Sub(job.ShiftedEnd())
		if float64(gap) < travelMin+float64(minBuffer) {
			return false, 0, nil
		}
		cost += travelMin
	}

	return true, cost, nil
}

// insertionCandidate is the best feasible slot found for one job.
type insertionCandidate struct {
	chainIdx int // -1 means "open a new chain"
	pos      int
	cost     float64
	feasible bool
}

// bestInsertions returns every feasible (chainIdx, pos) for job, sorted
// ascending by cost, used by both greedy and regret-2 repair.
func bestInsertions(ctx context.Context, chains []schedule.Chain, job schedule.Job, travel TravelTimeSource, minBuffer int) ([]insertionCandidate, error) {
	var candidates []insertionCandidate
	for ci, c := range chains {
		for pos := 0; pos <= c.Len(); pos++ {
			ok, cost, err := feasibleInsertion(ctx, c.Jobs, pos, job, travel, minBuffer)
			if err != nil {
				return nil, err
			}
			if ok {
				candidates = append(candidates, insertionCandidate{chainIdx: ci, pos: pos, cost: cost, feasible: true})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].cost < candidates[j].cost })

	return candidates, nil
}

// applyInsertion returns a copy of chains with job placed at cand's slot,
// opening a new singleton chain when cand.chainIdx is -1.
func applyInsertion(chains []schedule.Chain, cand insertionCandidate, job schedule.Job, newChainSeq int) []schedule.Chain {
	out := make([]schedule.Chain, len(chains))
	for i, c := range chains {
		out[i] = c.Clone()
	}

	if cand.chainIdx < 0 {
		id := "lns_new-" + strconv.Itoa(newChainSeq)
		return append(out, schedule.Chain{ID: id, Jobs: []schedule.Job{job}})
	}

	c := out[cand.chainIdx]
	jobs := make([]schedule.Job, 0, len(c.Jobs)+1)
	jobs = append(jobs, c.Jobs[:cand.pos]...)
	jobs = append(jobs, job)
	jobs = append(jobs, c.Jobs[cand.pos:]...)
	out[cand.chainIdx] = schedule.Chain{ID: c.ID, Jobs: jobs}

	return out
}

// repair reinserts removed jobs into chains one at a time following
// strategy, opening a new chain for any job with no feasible slot.
func repair(ctx context.Context, chains []schedule.Chain, removed []schedule.Job, strategy RepairStrategy, travel TravelTimeSource, minBuffer int) ([]schedule.Chain, error) {
	cur := make([]schedule.Chain, len(chains))
	for i, c := range chains {
		cur[i] = c.Clone()
	}

	pending := make([]schedule.Job, len(removed))
	copy(pending, removed)
	newChainSeq := 0

	for len(pending) > 0 {
		var chosenIdx int
		var chosenCand insertionCandidate
		var chosenFeasible bool

		switch strategy {
		case RepairRegret2:
			chosenIdx, chosenCand, chosenFeasible = 0, insertionCandidate{}, false
			bestRegret := math.Inf(-1)
			for i, job := range pending {
				cands, err := bestInsertions(ctx, cur, job, travel, minBuffer)
				if err != nil {
					return nil, err
				}
				if len(cands) == 0 {
					// No feasible slot anywhere: this job forces a new chain;
					// treat it as maximal regret so it is handled immediately.
					chosenIdx, chosenCand, chosenFeasible = i, insertionCandidate{chainIdx: -1}, true
					bestRegret = math.Inf(1)
					continue
				}
				regret := 0.0
				if len(cands) > 1 {
					regret = cands[1].cost - cands[0].cost
				}
				if regret > bestRegret {
					bestRegret = regret
					chosenIdx = i
					chosenCand = cands[0]
					chosenFeasible = true
				}
			}
		default:
			job := pending[0]
			cands, err := bestInsertions(ctx, cur, job, travel, minBuffer)
			if err != nil {
				return nil, err
			}
			chosenIdx = 0
			chosenFeasible = true
			if len(cands) > 0 {
				chosenCand = cands[0]
			} else {
				chosenCand = insertionCandidate{chainIdx: -1}
			}
		}

		if !chosenFeasible {
			break
		}

		job := pending[chosenIdx]
		if chosenCand.chainIdx == -1 {
			newChainSeq++
		}
		cur = applyInsertion(cur, chosenCand, job, newChainSeq)
		pending = append(pending[:chosenIdx], pending[chosenIdx+1:]...)
	}

	return cur, nil
}
