package qubo

import (
	"errors"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/qmatrix"
)

// ErrBudgetExceeded is returned by Build when the flattened variable
// count exceeds maxVars and the caller has not trimmed groups first.
var ErrBudgetExceeded = errors.New("qubo: variable count exceeds budget")

// Default penalty coefficients. LambdaAssign must dominate any single
// candidate's cost so the one-hot constraint is never worth violating;
// LambdaConflict must dominate LambdaAssign so a conflicting pair of
// selections is never preferable to violating the one-hot constraint on
// a single route.
const (
	DefaultLambdaAssign   = 5000.0
	DefaultLambdaConflict = 50000.0
)

// flatVar locates one candidate's flattened QUBO variable.
type flatVar struct {
	groupIdx     int
	candidateIdx int
}

// Build flattens groups into a symmetric QUBO matrix: the diagonal holds
// each candidate's linear cost (minus the one-hot constraint's linear
// term), and off-diagonal cells hold the one-hot pairwise penalty for
// same-route pairs plus the conflict penalty for same-chain overlapping
// pairs, per §4.7's construction. TrimToBudget must be called first if
// the raw group set would exceed maxVars.
//
// Complexity: O(V^2) where V is the total candidate count across groups.
func Build(groups []Group, lambdaAssign, lambdaConflict float64, maxVars int) (*qmatrix.Dense, []flatVar, error) {
	withSynthetic := make([][]Candidate, len(groups))
	total := 0
	for i, g := range groups {
		withSynthetic[i] = withNewChainOption(g.Candidates)
		total += len(withSynthetic[i])
	}
	if maxVars > 0 && total > maxVars {
		return nil, nil, ErrBudgetExceeded
	}

	vars := make([]flatVar, 0, total)
	allCandidates := make([]Candidate, 0, total)
	groupStart := make([]int, len(groups))
	for gi, cands := range withSynthetic {
		groupStart[gi] = len(vars)
		for ci := range cands {
			vars = append(vars, flatVar{groupIdx: gi, candidateIdx: ci})
			allCandidates = append(allCandidates, cands[ci])
		}
	}

	n := len(vars)
	Q, err := qmatrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	for i, v := range vars {
		if err := Q.AddAt(i, i, allCandidates[i].Cost-lambdaAssign); err != nil {
			return nil, nil, err
		}
		_ = v
	}

	for gi, cands := range withSynthetic {
		start := groupStart[gi]
		for k := 0; k < len(cands); k++ {
			for l := k + 1; l < len(cands); l++ {
				if err := Q.AddAt(start+k, start+l, lambdaAssign); err != nil {
					return nil, nil, err
				}
				if err := Q.AddAt(start+l, start+k, lambdaAssign); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if vars[i].groupIdx == vars[j].groupIdx {
				continue
			}
			if conflicts(allCandidates[i], allCandidates[j]) {
				if err := Q.AddAt(i, j, lambdaConflict/2); err != nil {
					return nil, nil, err
				}
				if err := Q.AddAt(j, i, lambdaConflict/2); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return Q, vars, nil
}

// TrimToBudget drops the least-critical groups (lowest-cost best
// candidate first, since those routes are "least critical" in the sense
// that any assignment works well for them) until the flattened variable
// count fits within maxVars, per §4.7's failure semantics.
func TrimToBudget(groups []Group, maxVars int) []Group {
	total := 0
	for _, g := range groups {
		total += len(g.Candidates) + 1
	}
	if maxVars <= 0 || total <= maxVars {
		return groups
	}

	kept := make([]Group, len(groups))
	copy(kept, groups)

	for total > maxVars && len(kept) > 0 {
		worstIdx, worstBest := 0, bestCost(kept[0])
		for i := 1; i < len(kept); i++ {
			c := bestCost(kept[i])
			if c < worstBest {
				worstBest = c
				worstIdx = i
			}
		}
		total -= len(kept[worstIdx].Candidates) + 1
		kept = append(kept[:worstIdx], kept[worstIdx+1:]...)
	}

	return kept
}

func bestCost(g Group) float64 {
	best := NewChainCandidateCost
	for _, c := range g.Candidates {
		if c.Cost < best {
			best = c.Cost
		}
	}

	return best
}
