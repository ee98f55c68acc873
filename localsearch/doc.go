// Package localsearch implements relocate and swap moves over a set of
// chains, accepting only moves that strictly improve a multi-objective
// score and remain feasible against the travel-time oracle.
//
// Structured like the teacher's tsp package local-search passes
// (two_opt.go/three_opt.go): pure functions over an explicit Options,
// first-improvement scanning, deterministic iteration order, and an
// iteration cap rather than unconditional convergence.
package localsearch
