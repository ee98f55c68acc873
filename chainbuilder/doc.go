// Package chainbuilder solves the per-block minimum-path-cover problem:
// given a set of same-block Jobs and a feasibility relation between
// them, find the fewest possible ordered job sequences ("chains") such
// that every job appears in exactly one chain and every adjacent pair
// within a chain is a feasible back-to-back assignment for one bus.
//
// Minimum path cover on a DAG is solved exactly via the classical
// reduction to maximum bipartite matching (split each job into an
// out-node and an in-node, run max flow from a super-source to a
// super-sink): chains = |jobs| - matching size. This replaces an
// external MIP solver with a combinatorial algorithm that is provably
// optimal for the same objective, reported through the same
// solver-status vocabulary an ILP-backed implementation would use.
package chainbuilder
