package localsearch

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// feasibleInsertion reports whether job can be placed at index idx in
// jobs (0 <= idx <= len(jobs)) without violating MinBufferMin against
// either neighbor, using the travel-time oracle for both legs that would
// be newly created.
//
// Complexity: O(1) oracle calls (at most two).
func feasibleInsertion(ctx context.Context, jobs []schedule.Job, idx int, job schedule.Job, travel TravelTimeSource, minBuffer int) (bool, error) {
	if idx > 0 {
		prev := jobs[idx-1]
		travelMin, err := travel.Minutes(ctx, prev.EndLoc, job.StartLoc)
		if err != nil {
			return false, err
		}
		gap := job.ShiftedStart().Sub(prev.ShiftedEnd())
		if float64(gap) < travelMin+float64(minBuffer) {
			return false, nil
		}
	}
	if idx < len(jobs) {
		next := jobs[idx]
		travelMin, err := travel.Minutes(ctx, job.EndLoc, next.StartLoc)
		if err != nil {
			return false, err
		}
		gap := next.ShiftedStart().Sub(job.ShiftedEnd())
		if float64(gap) < travelMin+float64(minBuffer) {
			return false, nil
		}
	}

	return true, nil
}

// withJobRemoved returns a copy of chains with the job at
// chains[chainIdx].Jobs[jobIdx] removed. A chain left with zero jobs is
// dropped entirely, which is how a relocate move eliminates a bus.
func withJobRemoved(chains []schedule.Chain, chainIdx, jobIdx int) []schedule.Chain {
	out := make([]schedule.Chain, 0, len(chains))
	for i, c := range chains {
		if i != chainIdx {
			out = append(out, c.Clone())
			continue
		}
		jobs := make([]schedule.Job, 0, len(c.Jobs)-1)
		jobs = append(jobs, c.Jobs[:jobIdx]...)
		jobs = append(jobs, c.Jobs[jobIdx+1:]...)
		if len(jobs) == 0 {
			continue
		}
		out = append(out, schedule.Chain{ID: c.ID, Jobs: jobs})
	}

	return out
}

// withJobInserted returns a copy of chains with job inserted at position
// idx of chains[chainIdx].Jobs.
func withJobInserted(chains []schedule.Chain, chainIdx, idx int, job schedule.Job) []schedule.Chain {
	out := make([]schedule.Chain, len(chains))
	for i, c := range chains {
		out[i] = c.Clone()
	}
	c := out[chainIdx]
	jobs := make([]schedule.Job, 0, len(c.Jobs)+1)
	jobs = append(jobs, c.Jobs[:idx]...)
	jobs = append(jobs, job)
	jobs = append(jobs, c.Jobs[idx:]...)
	out[chainIdx] = schedule.Chain{ID: c.ID, Jobs: jobs}

	return out
}

// withJobsSwapped returns a copy of chains with the jobs at the two
// given (chainIdx, jobIdx) positions exchanged in place.
func withJobsSwapped(chains []schedule.Chain, aChain, aJob, bChain, bJob int) []schedule.Chain {
	out := make([]schedule.Chain, len(chains))
	for i, c := range chains {
		out[i] = c.Clone()
	}
	out[aChain].Jobs[aJob], out[bChain].Jobs[bJob] = out[bChain].Jobs[bJob], out[aChain].Jobs[aJob]

	return out
}
