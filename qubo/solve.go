package qubo

import (
	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/anneal"
	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/qmatrix"
)

// DefaultIterations bounds one annealing run; each iteration considers
// exactly one one-hot neighborhood flip (reassigning a single route to a
// different candidate), per §4.7's "flip selection within a route's
// candidate set".
const DefaultIterations = 300

// Solve runs simulated annealing over one-hot neighborhoods: starting
// from an initial selection (one candidate index per group), each
// iteration proposes reassigning one randomly chosen group to a
// different candidate and accepts the move under the shared Metropolis
// criterion, cooling geometrically from schedule.StartTemp toward
// schedule.MinTemp over iterations rounds.
//
// vars and Q must come from Build on the same groups. Returns, for each
// group, the index into that group's (synthetic-augmented) candidate
// list that was finally selected.
//
// Complexity: O(iterations * g * n) where n is the flattened variable
// count and g the group count (each iteration recomputes the full
// quadratic form once, over the g selected variables).
func Solve(groups []Group, Q *qmatrix.Dense, vars []flatVar, schedule anneal.Schedule, iterations int, seed int64) ([]int, error) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	rng := anneal.RNGFromSeed(seed)

	groupVars := make([][]int, len(groups))
	for i, v := range vars {
		groupVars[v.groupIdx] = append(groupVars[v.groupIdx], i)
	}

	selected := make([]int, len(groups))
	x := make([]float64, len(vars))
	for g, idxs := range groupVars {
		selected[g] = 0
		x[idxs[0]] = 1
	}

	energy, err := quadraticForm(Q, x)
	if err != nil {
		return nil, err
	}

	temp := schedule.StartTemp
	bestSelected := append([]int(nil), selected...)
	bestEnergy := energy

	for iter := 0; iter < iterations; iter++ {
		g := rng.Intn(len(groups))
		idxs := groupVars[g]
		if len(idxs) < 2 {
			temp = schedule.Cool(temp)
			continue
		}

		newLocal := rng.Intn(len(idxs))
		for newLocal == selected[g] {
			newLocal = rng.Intn(len(idxs))
		}

		candidateX := append([]float64(nil), x...)
		candidateX[idxs[selected[g]]] = 0
		candidateX[idxs[newLocal]] = 1

		candidateEnergy, err := quadraticForm(Q, candidateX)
		if err != nil {
			return nil, err
		}

		delta := candidateEnergy - energy
		if anneal.Accept(delta, temp, rng) {
			x = candidateX
			energy = candidateEnergy
			selected[g] = newLocal
		}

		if energy < bestEnergy {
			bestEnergy = energy
			bestSelected = append([]int(nil), selected...)
		}

		temp = schedule.Cool(temp)
	}

	return bestSelected, nil
}

func quadraticForm(Q *qmatrix.Dense, x []float64) (float64, error) {
	n := Q.Rows()
	var sum float64
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if x[j] == 0 {
				continue
			}
			v, err := Q.At(i, j)
			if err != nil {
				return 0, err
			}
			sum += v
		}
	}

	return sum, nil
}
