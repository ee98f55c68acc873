// Package testfixture builds small, deterministic digraph instances for
// package tests, adapted from lvlath's builder package and trimmed down
// to two topologies: a complete bipartite graph (optionally with holes,
// shaped like chainbuilder's split graph) and a simple path. No test in
// this module imports it yet. Every constructor is deterministic given
// its arguments — no hidden RNG, no wall-clock seeding.
package testfixture
