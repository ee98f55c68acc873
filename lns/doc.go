// Package lns implements the large neighborhood search refiner:
// destroy a fraction of jobs from the current candidate, repair them
// back in one at a time, and accept the result under a Metropolis
// criterion with geometric cooling.
//
// Grounded on tsp/rng.go's seeded-RNG-injection pattern (never
// math/rand global state) and tsp.Options' iteration/time-budget
// plumbing; acceptance and cooling are delegated to the shared
// internal/anneal helper so this refiner and the QUBO refiner can never
// drift in acceptance semantics.
package lns
