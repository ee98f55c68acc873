package chainbuilder

import (
	"strconv"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// Build solves minimum path cover for one block's jobs and returns the
// resulting chains with time shifts applied. All jobs must belong to the
// same schedule.Block; Build does not itself classify or filter jobs.
func Build(jobs []schedule.Job, opts Options) (Result, error) {
	if len(jobs) == 0 {
		return Result{}, ErrEmptyBlock
	}
	block := jobs[0].Block
	for _, j := range jobs {
		if j.Block != block {
			return Result{}, ErrMixedBlocks
		}
	}

	arcs, err := buildArcs(jobs, opts)
	if err != nil {
		return Result{}, err
	}
	if opts.UseMLRanking {
		arcs = rankArcs(arcs, jobs)
	}

	matched, matchCount, err := solveMinimumPathCover(len(jobs), arcs)
	if err != nil {
		return Result{}, err
	}

	rawChains, err := reconstructChains(len(jobs), matched)
	if err != nil {
		return Result{}, err
	}

	work := make([]schedule.Job, len(jobs))
	copy(work, jobs)

	splitCount := 0
	var chains []schedule.Chain
	for ci, idxChain := range rawChains {
		segments, err := applyShiftsAndSplit(opts.Ctx, work, idxChain, opts)
		if err != nil {
			return Result{}, err
		}
		if len(segments) > 1 {
			splitCount += len(segments) - 1
		}

		for si, seg := range segments {
			chainJobs := make([]schedule.Job, len(seg))
			for k, idx := range seg {
				chainJobs[k] = work[idx]
			}
			chains = append(chains, schedule.Chain{
				ID:   chainLabel(block, ci, si),
				Jobs: chainJobs,
			})
		}
	}

	lowerBound := len(jobs) - matchCount
	bestBuses := len(chains)
	gap := 0.0
	if lowerBound > 0 {
		gap = float64(bestBuses-lowerBound) / float64(lowerBound)
		if gap < 0 {
			gap = 0
		}
	}

	return Result{
		Chains: chains,
		Diagnostics: Diagnostics{
			SolverStatus:    StatusOptimal,
			LowerBoundBuses: lowerBound,
			OptimalityGap:   gap,
			SplitCount:      splitCount,
		},
	}, nil
}

func chainLabel(block schedule.Block, chainIdx, segmentIdx int) string {
	base := block.String() + "-" + strconv.Itoa(chainIdx)
	if segmentIdx == 0 {
		return base
	}

	return base + "s" + strconv.Itoa(segmentIdx)
}
