package testfixture

import (
	"fmt"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/digraph"
)

// Bipartite builds a complete bipartite digraph K_{n1,n2} with left
// vertices "L0".."L{n1-1}" and right vertices "R0".."R{n2-1}", every
// left-to-right edge present with the given weight. Mirrors chainbuilder's
// split-node feasibility graph shape without any domain semantics attached.
//
// Complexity: O(n1*n2).
func Bipartite(n1, n2 int, weight int64) *digraph.Graph {
	g := digraph.NewGraph()

	left := make([]string, n1)
	for i := 0; i < n1; i++ {
		left[i] = fmt.Sprintf("L%d", i)
		_ = g.AddVertex(left[i])
	}

	right := make([]string, n2)
	for j := 0; j < n2; j++ {
		right[j] = fmt.Sprintf("R%d", j)
		_ = g.AddVertex(right[j])
	}

	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			_ = g.AddEdge(left[i], right[j], weight)
		}
	}

	return g
}

// BipartiteWithHoles builds the same shape as Bipartite but skips any
// (i, j) pair for which skip returns true, letting tests carve out
// infeasible arcs the way chainbuilder does for time-window conflicts.
//
// Complexity: O(n1*n2).
func BipartiteWithHoles(n1, n2 int, weight int64, skip func(i, j int) bool) *digraph.Graph {
	g := digraph.NewGraph()

	left := make([]string, n1)
	for i := 0; i < n1; i++ {
		left[i] = fmt.Sprintf("L%d", i)
		_ = g.AddVertex(left[i])
	}

	right := make([]string, n2)
	for j := 0; j < n2; j++ {
		right[j] = fmt.Sprintf("R%d", j)
		_ = g.AddVertex(right[j])
	}

	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			if skip != nil && skip(i, j) {
				continue
			}
			_ = g.AddEdge(left[i], right[j], weight)
		}
	}

	return g
}

// Path builds a simple directed path v0 -> v1 -> ... -> v{n-1} with unit
// weights, used to exercise single-chain degenerate cases.
//
// Complexity: O(n).
func Path(n int) *digraph.Graph {
	g := digraph.NewGraph()
	if n <= 0 {
		return g
	}

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("V%d", i)
		_ = g.AddVertex(ids[i])
	}
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(ids[i], ids[i+1], 1)
	}

	return g
}
