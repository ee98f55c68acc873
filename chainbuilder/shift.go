package chainbuilder

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// applyShiftsAndSplit walks chainIdx (job indices in traversal order),
// assigning each job's TimeShiftMin so every adjacent transition clears
// travel time plus MinBufferMin, and splitting the chain wherever no
// shift within tolerance can do so — the visited-set guard in
// reconstructChains upstream already rules out a true cycle, so a split here only ever
// happens because of a tight time window, never non-termination.
//
// Within one block only one shift direction is actually usable (entries:
// earlier only; exits: later only, per the classifier's Window), so each
// job's shift is resolved against exactly one neighboring constraint:
// entries adjust the predecessor walking tail-to-head, exits adjust the
// successor walking head-to-tail.
func applyShiftsAndSplit(ctx context.Context, jobs []schedule.Job, chainIdx []int, opts Options) ([][]int, error) {
	if len(chainIdx) <= 1 {
		return [][]int{chainIdx}, nil
	}

	if opts.ShiftLater > 0 {
		return splitForwardAdjustSuccessor(ctx, jobs, chainIdx, opts)
	}

	return splitBackwardAdjustPredecessor(ctx, jobs, chainIdx, opts)
}

// splitForwardAdjustSuccessor handles exit blocks: walk head-to-tail,
// pushing each successor's shift later just enough to clear the gap to
// its already-finalized predecessor.
func splitForwardAdjustSuccessor(ctx context.Context, jobs []schedule.Job, chainIdx []int, opts Options) ([][]int, error) {
	var segments [][]int
	current := []int{chainIdx[0]}
	jobs[chainIdx[0]].TimeShiftMin = 0

	for k := 1; k < len(chainIdx); k++ {
		i, j := chainIdx[k-1], chainIdx[k]
		travelMin, err := opts.Travel.Minutes(ctx, jobs[i].EndLoc, jobs[j].StartLoc)
		if err != nil {
			return nil, err
		}

		requiredStart := jobs[i].ShiftedEnd().Add(int(travelMin)).Add(opts.MinBufferMin)
		shift := 0
		if jobs[j].StartAtShift(0) < requiredStart {
			shift = requiredStart.Sub(jobs[j].StartAtShift(0))
		}

		if shift > opts.ShiftLater || jobs[j].StartAtShift(shift) < opts.MinStartHour {
			segments = append(segments, current)
			current = []int{j}
			jobs[j].TimeShiftMin = 0
			continue
		}

		jobs[j].TimeShiftMin = shift
		current = append(current, j)
	}
	segments = append(segments, current)

	return segments, nil
}

// splitBackwardAdjustPredecessor handles entry blocks: walk tail-to-head,
// pulling each predecessor's shift earlier just enough to clear the gap
// to its already-finalized successor.
func splitBackwardAdjustPredecessor(ctx context.Context, jobs []schedule.Job, chainIdx []int, opts Options) ([][]int, error) {
	n := len(chainIdx)
	jobs[chainIdx[n-1]].TimeShiftMin = 0

	var reversedSegments [][]int
	current := []int{chainIdx[n-1]}

	for k := n - 2; k >= 0; k-- {
		i, j := chainIdx[k], chainIdx[k+1]
		travelMin, err := opts.Travel.Minutes(ctx, jobs[i].EndLoc, jobs[j].StartLoc)
		if err != nil {
			return nil, err
		}

		requiredEnd := jobs[j].ShiftedStart().Add(-int(travelMin)).Add(-opts.MinBufferMin)
		shift := 0
		if jobs[i].EndAtShift(0) > requiredEnd {
			shift = requiredEnd.Sub(jobs[i].EndAtShift(0))
		}

		if -shift > opts.ShiftEarlier || jobs[i].StartAtShift(shift) < opts.MinStartHour {
			reversedSegments = append(reversedSegments, current)
			current = []int{i}
			jobs[i].TimeShiftMin = 0
			continue
		}

		jobs[i].TimeShiftMin = shift
		current = append([]int{i}, current...)
	}
	reversedSegments = append(reversedSegments, current)

	segments := make([][]int, len(reversedSegments))
	for k, seg := range reversedSegments {
		segments[len(reversedSegments)-1-k] = seg
	}

	return segments, nil
}
