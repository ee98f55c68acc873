package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/digraph"
	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/maxflow"
)

// buildBipartite wires a super source/sink around a simple bipartite
// matching instance: left {L1,L2,L3}, right {R1,R2}, edges L1-R1, L2-R1,
// L2-R2, L3-R2. Max matching = 2 (e.g. L1-R1, L2-R2 or L1-R1, L3-R2).
func buildBipartite(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.NewGraph()
	for _, id := range []string{"S", "T", "L1", "L2", "L3", "R1", "R2"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("S", "L1", 1))
	require.NoError(t, g.AddEdge("S", "L2", 1))
	require.NoError(t, g.AddEdge("S", "L3", 1))
	require.NoError(t, g.AddEdge("R1", "T", 1))
	require.NoError(t, g.AddEdge("R2", "T", 1))
	require.NoError(t, g.AddEdge("L1", "R1", 1))
	require.NoError(t, g.AddEdge("L2", "R1", 1))
	require.NoError(t, g.AddEdge("L2", "R2", 1))
	require.NoError(t, g.AddEdge("L3", "R2", 1))

	return g
}

func TestDinic_MaxBipartiteMatching(t *testing.T) {
	g := buildBipartite(t)
	res, err := maxflow.Dinic(g, "S", "T", maxflow.Options{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.MaxFlow)
}

func TestDinic_SourceSinkMissing(t *testing.T) {
	g := digraph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err := maxflow.Dinic(g, "S", "A", maxflow.Options{})
	assert.ErrorIs(t, err, maxflow.ErrSourceNotFound)

	_, err = maxflow.Dinic(g, "A", "T", maxflow.Options{})
	assert.ErrorIs(t, err, maxflow.ErrSinkNotFound)
}

func TestDinic_NoFeasibleEdges(t *testing.T) {
	g := digraph.NewGraph()
	for _, id := range []string{"S", "T", "L1", "R1"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("S", "L1", 1))
	require.NoError(t, g.AddEdge("R1", "T", 1))
	// No L1->R1 edge: matching is impossible.
	res, err := maxflow.Dinic(g, "S", "T", maxflow.Options{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MaxFlow)
}
