package qubo

import "github.com/odinx-svg/bus-route-optimizer-sub000/schedule"

// Candidate is one (target chain, insertion index) option for
// reinserting a hot route's job, plus a synthetic "open a new chain"
// option when ChainID is empty.
type Candidate struct {
	ChainID  string // "" means "open a new chain"
	Pos      int
	StartMin int
	EndMin   int
	Cost     float64
}

// Group bundles every real chain target considered for one hot route's
// job. Candidates does not hold the synthetic new-chain option; Build
// and ApplySelection append it via withNewChainOption.
type Group struct {
	Job        schedule.Job
	Candidates []Candidate
}

// NewChainCandidateCost is the cost assigned to the synthetic
// "open a new chain" candidate: it never conflicts with any other
// candidate but should be strictly worse than any feasible reinsertion
// so annealing only picks it when nothing else is feasible or cheap
// enough, matching the spec's "bus-bloat penalty" framing.
const NewChainCandidateCost = 1000.0

// withNewChainOption appends the synthetic candidate to candidates; it
// does not check whether one is already present.
func withNewChainOption(candidates []Candidate) []Candidate {
	return append(candidates, Candidate{ChainID: "", Cost: NewChainCandidateCost})
}

// overlaps reports whether two candidates' occupied windows intersect;
// used only for real (non-synthetic) chain targets, since a synthetic
// new chain can never conflict with anything.
func overlaps(a, b Candidate) bool {
	return a.StartMin < b.EndMin && b.StartMin < a.EndMin
}

func conflicts(a, b Candidate) bool {
	if a.ChainID == "" || b.ChainID == "" {
		return false
	}
	if a.ChainID != b.ChainID {
		return false
	}

	return overlaps(a, b)
}
