package chainbuilder

import (
	"fmt"
	"sort"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/digraph"
	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/maxflow"
)

const (
	sourceID = "SOURCE"
	sinkID   = "SINK"
)

func outNode(i int) string { return fmt.Sprintf("out%d", i) }
func inNode(i int) string  { return fmt.Sprintf("in%d", i) }

// solveMinimumPathCover runs the out-node/in-node split-graph reduction
// of minimum path cover to maximum bipartite matching. It returns, for
// each job index with a predecessor in the cover, the index of that
// predecessor (matched[j] = i means arc i->j was selected).
//
// The order of arcs does not influence the result: the flow graph keeps
// edges in maps and Dinic explores each adjacency list in vertex-name
// order, so an ML-ranked arc slice and an unranked one yield the same
// matching. Dinic optimizes match cardinality only, which is the
// dominant term of the original weighted objective (§4.3 step 2); arc
// weights (deadhead) are not considered when choosing among maximum
// matchings.
func solveMinimumPathCover(n int, arcs []Arc) (matched map[int]int, matchCount int, err error) {
	g := digraph.NewGraph()
	_ = g.AddVertex(sourceID)
	_ = g.AddVertex(sinkID)

	for i := 0; i < n; i++ {
		_ = g.AddVertex(outNode(i))
		_ = g.AddVertex(inNode(i))
		_ = g.AddEdge(sourceID, outNode(i), 1)
		_ = g.AddEdge(inNode(i), sinkID, 1)
	}

	for _, arc := range arcs {
		if err := g.AddEdge(outNode(arc.From), inNode(arc.To), 1); err != nil {
			return nil, 0, err
		}
	}

	result, err := maxflow.Dinic(g, sourceID, sinkID, maxflow.Options{})
	if err != nil {
		return nil, 0, err
	}

	matched = make(map[int]int, len(result.Matched))
	for out, in := range result.Matched {
		var i, j int
		if _, err := fmt.Sscanf(out, "out%d", &i); err != nil {
			continue
		}
		if _, err := fmt.Sscanf(in, "in%d", &j); err != nil {
			continue
		}
		matched[j] = i
	}

	return matched, int(result.MaxFlow), nil
}

// sortedJobIndices returns 0..n-1, kept as a helper so chain
// reconstruction always walks job indices in a deterministic order
// regardless of map iteration order elsewhere.
func sortedJobIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Ints(idx)

	return idx
}
