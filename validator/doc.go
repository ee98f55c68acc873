// Package validator checks every adjacent transition in a finished
// schedule against the travel-time oracle, classifying each problem
// found as an error or a warning incident, per §4.8.
//
// Concurrent bus checks are bounded by a golang.org/x/sync/semaphore
// gate of the same size travel.Oracle uses for its provider calls (a
// separate gate, not shared), and a visited-set pass guards
// against a route ID appearing twice in one bus's day — the same
// non-termination risk the chain builder's splitter guards against,
// adapted here from the teacher's dfs package's visited-map idiom.
package validator
