package qubo

import (
	"strconv"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// ApplySelection splices each group's selected candidate back onto
// chains: the job is first removed from whichever chain holds it, then
// a real ChainID inserts the job at Pos in that chain; an empty
// ChainID (the synthetic option) opens a new singleton chain. Every
// touched chain is left sorted by start time is the caller's
// responsibility — BusSchedule.SortByStartTime handles that once chains
// are projected to the output schedule.
func ApplySelection(chains []schedule.Chain, groups []Group, selected []int) []schedule.Chain {
	out := make([]schedule.Chain, len(chains))
	index := make(map[string]int, len(chains))
	for i, c := range chains {
		out[i] = c.Clone()
		index[c.ID] = i
	}

	newChainSeq := 0
	for gi, g := range groups {
		cands := withNewChainOption(g.Candidates)
		sel := 0
		if gi < len(selected) {
			sel = selected[gi]
		}
		if sel < 0 || sel >= len(cands) {
			sel = len(cands) - 1
		}
		chosen := cands[sel]

		for i := range out {
			kept := make([]schedule.Job, 0, out[i].Len())
			for _, j := range out[i].Jobs {
				if j.RouteID != g.Job.RouteID {
					kept = append(kept, j)
				}
			}
			out[i] = schedule.Chain{ID: out[i].ID, Jobs: kept}
		}

		if chosen.ChainID == "" {
			newChainSeq++
			out = append(out, schedule.Chain{ID: "qubo_new-" + strconv.Itoa(newChainSeq), Jobs: []schedule.Job{g.Job}})
			continue
		}

		ci, ok := index[chosen.ChainID]
		if !ok {
			newChainSeq++
			out = append(out, schedule.Chain{ID: "qubo_new-" + strconv.Itoa(newChainSeq), Jobs: []schedule.Job{g.Job}})
			continue
		}

		pos := chosen.Pos
		if pos > out[ci].Len() {
			pos = out[ci].Len()
		}
		jobs := make([]schedule.Job, 0, out[ci].Len()+1)
		jobs = append(jobs, out[ci].Jobs[:pos]...)
		jobs = append(jobs, g.Job)
		jobs = append(jobs, out[ci].Jobs[pos:]...)
		out[ci] = schedule.Chain{ID: out[ci].ID, Jobs: jobs}
	}

	return out
}
