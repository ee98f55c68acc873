package merger

import (
	"math"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/qmatrix"
)

// infeasibleCost marks a cell whose pairing is not allowed at all. It
// must dominate any real cost so the solver only ever picks it when no
// feasible assignment covers that row.
const infeasibleCost = 1e15

// solveAssignment runs the Kuhn-Munkres algorithm on a square cost
// matrix (callers pad with infeasibleCost to square it) and returns, for
// each row, the assigned column index. Rows whose only available
// assignment is an infeasibleCost cell are reported with assignment -1.
//
// Complexity: O(n^3), following the classical potential-based
// formulation — not the teacher's own code (lvlath has no assignment
// solver), but built on the same qmatrix.Dense abstraction the teacher's
// matrix package established for dense numeric grids.
func solveAssignment(cost *qmatrix.Dense) ([]int, error) {
	n := cost.Rows()
	m := cost.Cols()
	if n > m {
		return nil, ErrNonSquareCost
	}

	const inf = math.MaxFloat64 / 2

	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1) // p[j] = 1-based row assigned to column j, 0 = unassigned
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				val, err := cost.At(i0-1, j-1)
				if err != nil {
					return nil, err
				}
				cur := val - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowAssignment := make([]int, n)
	for i := range rowAssignment {
		rowAssignment[i] = -1
	}
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			rowAssignment[p[j]-1] = j - 1
		}
	}

	for i, j := range rowAssignment {
		if j < 0 {
			continue
		}
		val, err := cost.At(i, j)
		if err == nil && val >= infeasibleCost {
			rowAssignment[i] = -1
		}
	}

	return rowAssignment, nil
}
