package pipeline

import "github.com/odinx-svg/bus-route-optimizer-sub000/schedule"

// candidate bundles one iteration's output with the metrics the ranking
// comparator reads, per §4.11.
type candidate struct {
	label   string
	buses   []schedule.BusSchedule
	report  schedule.ValidationReport
	metrics schedule.Metrics
}

// compareCandidates implements the lexicographic rank key from §4.11 as
// a small pure comparator, consistent with the teacher's preference for
// comparator functions over reflection-based sorting helpers. Returns a
// negative number if a ranks better than b, positive if worse, zero if
// tied on every key.
func compareCandidates(a, b candidate) int {
	if d := intCmp(viabilityPenalty(a), viabilityPenalty(b)); d != 0 {
		return d
	}
	if d := intCmp(a.metrics.InfeasibleBuses, b.metrics.InfeasibleBuses); d != 0 {
		return d
	}
	if d := intCmp(a.metrics.BestBuses, b.metrics.BestBuses); d != 0 {
		return d
	}
	if d := intCmp(a.metrics.LoadSpreadRoutes, b.metrics.LoadSpreadRoutes); d != 0 {
		return d
	}
	if d := intCmp(a.metrics.LoadAbsDevSum, b.metrics.LoadAbsDevSum); d != 0 {
		return d
	}
	if d := intCmp(a.metrics.ErrorIssues, b.metrics.ErrorIssues); d != 0 {
		return d
	}
	if d := floatCmp(a.metrics.AvgDeadhead, b.metrics.AvgDeadhead); d != 0 {
		return d
	}
	if d := intCmp(a.metrics.WarningIssues, b.metrics.WarningIssues); d != 0 {
		return d
	}

	return floatCmp(-a.metrics.AvgEfficiency, -b.metrics.AvgEfficiency)
}

// viabilityPenalty returns 1 if the candidate split any chain (a lower
// bound on bus count was not achieved cleanly), 0 otherwise; viability
// is checked before every other key.
func viabilityPenalty(c candidate) int {
	if c.metrics.SplitCount > 0 {
		return 1
	}

	return 0
}

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func floatCmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// selectBest returns the candidate ranking best by compareCandidates,
// and whether every candidate considered had a nonzero split count (the
// select_with_risk flag from §4.10 step 5).
func selectBest(candidates []candidate) (candidate, bool) {
	best := candidates[0]
	allRisky := viabilityPenalty(best) == 1

	for _, c := range candidates[1:] {
		if viabilityPenalty(c) == 0 {
			allRisky = false
		}
		if compareCandidates(c, best) < 0 {
			best = c
		}
	}

	return best, allRisky
}
