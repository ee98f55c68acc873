// Package digraph is a small thread-safe directed weighted graph, adapted
// from the lvlath core.Graph primitive and trimmed to exactly what the
// chain builder's bipartite-matching reduction needs: vertices, weighted
// edges, and adjacency lookups under RWMutex protection.
//
// Unlike a general-purpose graph library, digraph never needs to support
// undirected edges, multi-edges, or self-loops — the feasibility DAG is
// directed-only by construction (arcs run forward in anchor time) — so
// those knobs were dropped rather than carried over unused.
package digraph
