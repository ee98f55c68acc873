package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/digraph"
)

func TestGraph_AddVertexAndEdge(t *testing.T) {
	g := digraph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 7))

	w, ok := g.EdgeWeight("A", "B")
	assert.True(t, ok)
	assert.EqualValues(t, 7, w)
}

func TestGraph_AddVertex_Idempotent(t *testing.T) {
	g := digraph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Len(t, g.Vertices(), 1)
}

func TestGraph_AddVertex_EmptyID(t *testing.T) {
	g := digraph.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), digraph.ErrEmptyVertexID)
}

func TestGraph_AddEdge_MissingVertex(t *testing.T) {
	g := digraph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddEdge("A", "B", 1), digraph.ErrVertexNotFound)
}

func TestGraph_Neighbors(t *testing.T) {
	g := digraph.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("C"))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))

	nbrs := g.Neighbors("A")
	assert.Len(t, nbrs, 2)
}
