package lns

import (
	"math/rand"
	"sort"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// jobRef locates one job inside the current chain set.
type jobRef struct {
	chainIdx int
	jobIdx   int
	job      schedule.Job
}

// destroyCount returns the number of jobs to remove for the given rate,
// always at least one when there is at least one job.
func destroyCount(totalJobs int, rate float64) int {
	n := int(rate * float64(totalJobs))
	if n < 1 && totalJobs > 0 {
		n = 1
	}
	if n > totalJobs {
		n = totalJobs
	}

	return n
}

func flattenJobs(chains []schedule.Chain) []jobRef {
	refs := make([]jobRef, 0)
	for ci, c := range chains {
		for ji, j := range c.Jobs {
			refs = append(refs, jobRef{chainIdx: ci, jobIdx: ji, job: j})
		}
	}

	return refs
}

// destroy removes count jobs from chains according to strategy, returning
// the remaining chains (jobless chains dropped) and the removed jobs.
func destroy(chains []schedule.Chain, count int, strategy DestroyStrategy, travel TravelTimeSource, rng *rand.Rand) ([]schedule.Chain, []schedule.Job) {
	all := flattenJobs(chains)
	if count >= len(all) {
		count = len(all)
	}

	var picked []jobRef
	switch strategy {
	case DestroyWorst:
		picked = pickWorst(chains, all, count)
	case DestroyRelated:
		picked = pickRelated(all, count, rng)
	default:
		picked = pickRandom(all, count, rng)
	}

	return removeRefs(chains, picked)
}

func pickRandom(all []jobRef, count int, rng *rand.Rand) []jobRef {
	idx := rng.Perm(len(all))[:count]
	picked := make([]jobRef, count)
	for i, k := range idx {
		picked[i] = all[k]
	}

	return picked
}

// pickWorst scores each job by the deadhead it contributes to its chain
// and favors jobs sitting in chains shorter than the mean chain length
// (the "under-loaded" chains the spec calls out).
func pickWorst(chains []schedule.Chain, all []jobRef, count int) []jobRef {
	meanLen := 0.0
	for _, c := range chains {
		meanLen += float64(c.Len())
	}
	if len(chains) > 0 {
		meanLen /= float64(len(chains))
	}

	type scored struct {
		ref   jobRef
		score float64
	}
	out := make([]scored, 0, len(all))
	for _, r := range all {
		c := chains[r.chainIdx]
		deadhead := 0.0
		if r.jobIdx > 0 {
			deadhead += geo.HaversineKM(c.Jobs[r.jobIdx-1].EndLoc, r.job.StartLoc)
		}
		if r.jobIdx < c.Len()-1 {
			deadhead += geo.HaversineKM(r.job.EndLoc, c.Jobs[r.jobIdx+1].StartLoc)
		}
		bonus := 0.0
		if float64(c.Len()) < meanLen {
			bonus = 1.0
		}
		out = append(out, scored{ref: r, score: deadhead + bonus*10})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })

	picked := make([]jobRef, count)
	for i := 0; i < count; i++ {
		picked[i] = out[i].ref
	}

	return picked
}

// pickRelated implements Shaw removal: pick a random seed job, then
// repeatedly add the remaining job most "related" to the most recently
// picked job (close in time and geography, with a same-school/same-type
// bonus).
func pickRelated(all []jobRef, count int, rng *rand.Rand) []jobRef {
	if len(all) == 0 || count == 0 {
		return nil
	}

	remaining := make([]jobRef, len(all))
	copy(remaining, all)

	seedIdx := rng.Intn(len(remaining))
	picked := []jobRef{remaining[seedIdx]}
	remaining = append(remaining[:seedIdx], remaining[seedIdx+1:]...)

	for len(picked) < count && len(remaining) > 0 {
		bestIdx := 0
		bestRelatedness := relatedness(picked[len(picked)-1].job, remaining[0].job)
		for i := 1; i < len(remaining); i++ {
			r := relatedness(picked[len(picked)-1].job, remaining[i].job)
			if r < bestRelatedness {
				bestRelatedness = r
				bestIdx = i
			}
		}
		picked = append(picked, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return picked
}

// relatedness is lower for more-related pairs (smaller time/geo distance,
// shared school or route kind), following Shaw's original formulation
// where the neighborhood operator minimizes a weighted distance.
func relatedness(a, b schedule.Job) float64 {
	timeDelta := float64(a.ShiftedAnchor().Sub(b.ShiftedAnchor()))
	if timeDelta < 0 {
		timeDelta = -timeDelta
	}
	geoDelta := geo.HaversineKM(a.StartLoc, b.StartLoc)

	bonus := 0.0
	if a.Route.SchoolID == b.Route.SchoolID {
		bonus -= 20
	}
	if a.Route.Kind == b.Route.Kind {
		bonus -= 10
	}

	return timeDelta + geoDelta*5 + bonus
}

// removeRefs splits chains into (remaining, removed) given a set of
// job references located against the original chain indices. Jobless
// chains are dropped.
func removeRefs(chains []schedule.Chain, picked []jobRef) ([]schedule.Chain, []schedule.Job) {
	removedByChain := make(map[int]map[int]bool, len(chains))
	removedJobs := make([]schedule.Job, 0, len(picked))
	for _, r := range picked {
		if removedByChain[r.chainIdx] == nil {
			removedByChain[r.chainIdx] = make(map[int]bool)
		}
		removedByChain[r.chainIdx][r.jobIdx] = true
		removedJobs = append(removedJobs, r.job)
	}

	remaining := make([]schedule.Chain, 0, len(chains))
	for ci, c := range chains {
		keep := make([]schedule.Job, 0, c.Len())
		for ji, j := range c.Jobs {
			if removedByChain[ci] != nil && removedByChain[ci][ji] {
				continue
			}
			keep = append(keep, j)
		}
		if len(keep) == 0 {
			continue
		}
		remaining = append(remaining, schedule.Chain{ID: c.ID, Jobs: keep})
	}

	return remaining, removedJobs
}
