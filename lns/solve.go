package lns

import (
	"context"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/anneal"
	"github.com/odinx-svg/bus-route-optimizer-sub000/localsearch"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// Run executes the destroy/repair/evaluate/adapt loop described in
// §4.6: each iteration removes a fraction of jobs, reinserts them, and
// accepts the result if it strictly improves the running best or passes
// the Metropolis test; the temperature cools geometrically and the
// destroy rate adapts toward MaxDestroyRate when recent improvement is
// rare and toward MinDestroyRate when it is frequent. Stops at
// MaxIterations, MaxNoImprovement consecutive non-improving iterations,
// or context cancellation — whichever comes first.
//
// Complexity: O(iterations * n^2) oracle-bounded feasibility checks.
func Run(chains []schedule.Chain, opts Options) ([]schedule.Chain, error) {
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.MaxNoImprovement <= 0 {
		opts.MaxNoImprovement = DefaultMaxNoImprovement
	}
	if opts.DestroyRate <= 0 {
		opts.DestroyRate = DefaultDestroyRate
	}

	rng := anneal.RNGFromSeed(opts.Seed)

	best := cloneChains(chains)
	bestScore, err := localsearch.Score(opts.Ctx, best, opts.Travel, opts.Weights)
	if err != nil {
		return nil, err
	}

	cur := best
	curScore := bestScore
	temp := opts.Schedule.StartTemp
	rate := opts.DestroyRate
	noImprovement := 0

	const adaptWindow = 10
	improvedInWindow := 0

	for iter := 0; iter < opts.MaxIterations; iter++ {
		select {
		case <-opts.Ctx.Done():
			return best, nil
		default:
		}

		totalJobs := countJobs(cur)
		count := destroyCount(totalJobs, rate)
		if count == 0 {
			break
		}

		remaining, removedJobs := destroy(cur, count, opts.DestroyStrategy, opts.Travel, rng)
		candidate, err := repair(opts.Ctx, remaining, removedJobs, opts.RepairStrategy, opts.Travel, opts.MinBufferMin)
		if err != nil {
			return nil, err
		}

		candidateScore, err := localsearch.Score(opts.Ctx, candidate, opts.Travel, opts.Weights)
		if err != nil {
			return nil, err
		}

		delta := candidateScore - curScore
		if anneal.Accept(delta, temp, rng) {
			cur = candidate
			curScore = candidateScore
		}

		if curScore < bestScore {
			best = cloneChains(cur)
			bestScore = curScore
			noImprovement = 0
			improvedInWindow++
		} else {
			noImprovement++
		}

		temp = opts.Schedule.Cool(temp)

		if (iter+1)%adaptWindow == 0 {
			ratio := float64(improvedInWindow) / float64(adaptWindow)
			if ratio < opts.AdaptThreshold {
				rate = clampRate(rate*1.2, opts.MinDestroyRate, opts.MaxDestroyRate)
			} else {
				rate = clampRate(rate*0.8, opts.MinDestroyRate, opts.MaxDestroyRate)
			}
			improvedInWindow = 0
		}

		if noImprovement >= opts.MaxNoImprovement {
			break
		}
	}

	return best, nil
}

func cloneChains(chains []schedule.Chain) []schedule.Chain {
	out := make([]schedule.Chain, len(chains))
	for i, c := range chains {
		out[i] = c.Clone()
	}

	return out
}

func countJobs(chains []schedule.Chain) int {
	n := 0
	for _, c := range chains {
		n += c.Len()
	}

	return n
}

func clampRate(rate, min, max float64) float64 {
	if rate < min {
		return min
	}
	if rate > max {
		return max
	}

	return rate
}
