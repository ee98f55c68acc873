package localsearch

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// DefaultMaxIterations bounds the number of accepted moves per Run call,
// mirroring the teacher's TwoOptMaxIters knob (0 would mean unlimited;
// this package always sets a finite default instead).
const DefaultMaxIterations = 500

// Options configures one Run call.
type Options struct {
	Travel       TravelTimeSource
	MinBufferMin int
	Weights      Weights
	MaxIterations int
	Ctx          context.Context
}

// DefaultOptions returns the tuning defaults documented on the constants
// and DefaultWeights above.
func DefaultOptions() Options {
	return Options{
		MinBufferMin:  10,
		Weights:       DefaultWeights(),
		MaxIterations: DefaultMaxIterations,
		Ctx:           context.Background(),
	}
}

// Run performs deterministic first-improvement relocate and swap moves
// over chains, restarting the scan after every accepted move, until no
// move improves the score, MaxIterations is reached, or the context is
// cancelled. Every candidate move is rechecked against the travel-time
// oracle before it is considered, and only strictly score-improving
// moves are accepted — matching the teacher's 2-opt first-improvement
// policy (tsp/two_opt.go) generalized from tour reversal to
// cross-chain relocate/swap.
//
// Complexity: O(iterations * n^2) oracle-bounded feasibility checks,
// where n is the total job count across all chains.
func Run(chains []schedule.Chain, opts Options) ([]schedule.Chain, error) {
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	cur := cloneChains(chains)
	curScore, err := Score(opts.Ctx, cur, opts.Travel, opts.Weights)
	if err != nil {
		return nil, err
	}

	accepted := 0
	for accepted < opts.MaxIterations {
		select {
		case <-opts.Ctx.Done():
			return cur, nil
		default:
		}

		candidate, candidateScore, found, err := findImprovingRelocate(opts.Ctx, cur, curScore, opts)
		if err != nil {
			return nil, err
		}
		if !found {
			candidate, candidateScore, found, err = findImprovingSwap(opts.Ctx, cur, curScore, opts)
			if err != nil {
				return nil, err
			}
		}
		if !found {
			break
		}

		cur = candidate
		curScore = candidateScore
		accepted++
	}

	return cur, nil
}

func cloneChains(chains []schedule.Chain) []schedule.Chain {
	out := make([]schedule.Chain, len(chains))
	for i, c := range chains {
		out[i] = c.Clone()
	}

	return out
}

// findImprovingRelocate scans every job for a feasible insertion point in
// a different chain that strictly improves the score, returning on the
// first one found (first-improvement).
func findImprovingRelocate(ctx context.Context, chains []schedule.Chain, curScore float64, opts Options) ([]schedule.Chain, float64, bool, error) {
	for fromChain := range chains {
		for fromJob := range chains[fromChain].Jobs {
			job := chains[fromChain].Jobs[fromJob]
			removed := withJobRemoved(chains, fromChain, fromJob)

			for toChain := range removed {
				if removed[toChain].ID == chains[fromChain].ID {
					// Reinserting into the chain the job was just pulled from is
					// not a relocate move; it only reorders within one chain.
					continue
				}
				targetJobs := removed[toChain].Jobs
				for idx := 0; idx <= len(targetJobs); idx++ {
					ok, err := feasibleInsertion(ctx, targetJobs, idx, job, opts.Travel, opts.MinBufferMin)
					if err != nil {
						return nil, 0, false, err
					}
					if !ok {
						continue
					}

					candidate := withJobInserted(removed, toChain, idx, job)
					candidateScore, err := Score(ctx, candidate, opts.Travel, opts.Weights)
					if err != nil {
						return nil, 0, false, err
					}
					if candidateScore < curScore {
						return candidate, candidateScore, true, nil
					}
				}
			}
		}
	}

	return nil, 0, false, nil
}

// findImprovingSwap scans every pair of jobs in distinct chains for a
// mutual feasible swap that strictly improves the score.
func findImprovingSwap(ctx context.Context, chains []schedule.Chain, curScore float64, opts Options) ([]schedule.Chain, float64, bool, error) {
	for aChain := range chains {
		for aJob := range chains[aChain].Jobs {
			for bChain := aChain + 1; bChain < len(chains); bChain++ {
				for bJob := range chains[bChain].Jobs {
					a := chains[aChain].Jobs[aJob]
					b := chains[bChain].Jobs[bJob]

					aNeighbors := replaceAt(chains[aChain].Jobs, aJob, b)
					bNeighbors := replaceAt(chains[bChain].Jobs, bJob, a)

					okA, err := feasibleInsertion(ctx, removeAt(aNeighbors, aJob), aJob, b, opts.Travel, opts.MinBufferMin)
					if err != nil {
						return nil, 0, false, err
					}
					okB, err := feasibleInsertion(ctx, removeAt(bNeighbors, bJob), bJob, a, opts.Travel, opts.MinBufferMin)
					if err != nil {
						return nil, 0, false, err
					}
					if !okA || !okB {
						continue
					}

					candidate := withJobsSwapped(chains, aChain, aJob, bChain, bJob)
					candidateScore, err := Score(ctx, candidate, opts.Travel, opts.Weights)
					if err != nil {
						return nil, 0, false, err
					}
					if candidateScore < curScore {
						return candidate, candidateScore, true, nil
					}
				}
			}
		}
	}

	return nil, 0, false, nil
}

func replaceAt(jobs []schedule.Job, idx int, job schedule.Job) []schedule.Job {
	out := make([]schedule.Job, len(jobs))
	copy(out, jobs)
	out[idx] = job

	return out
}

func removeAt(jobs []schedule.Job, idx int) []schedule.Job {
	out := make([]schedule.Job, 0, len(jobs)-1)
	out = append(out, jobs[:idx]...)
	out = append(out, jobs[idx+1:]...)

	return out
}
