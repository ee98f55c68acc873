// Package maxflow adapts lvlath's flow.Dinic (level-graph + blocking-flow
// max flow) to run over an internal/digraph.Graph with integer
// capacities. The chain builder uses it for exactly one purpose: solving
// minimum path cover on a feasibility DAG via the classical reduction to
// maximum bipartite matching (split each job into an out-node and an
// in-node, source→out-nodes, in-nodes→sink, feasibility arcs out(i)→in(j),
// unit capacities throughout).
package maxflow
