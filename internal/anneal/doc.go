// Package anneal centralizes the deterministic RNG factory and Metropolis
// acceptance rule shared by the LNS refiner (§4.6) and the QUBO hybrid
// refiner (§4.7), so the two metaheuristics can never drift in how they
// decide to accept a non-improving move.
//
// RNG derivation follows lvlath's tsp package convention: a fixed
// "zero seed" default plus a SplitMix64 avalanche mix for deriving
// independent sub-streams, never a time-seeded global source.
package anneal
