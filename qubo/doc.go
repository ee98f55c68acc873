// Package qubo implements the hybrid refiner for "hot" routes:
// candidate (bus, insertion index) assignments for each hot route are
// encoded as binary variables in a dense QUBO matrix (diagonal = linear
// cost, one-hot and conflict penalties folded into the off-diagonal
// terms) and solved by simulated annealing over one-hot neighborhoods.
// The pipeline picks the hot routes by the deadhead of the leg leading
// into each job (pipeline/groups.go); validation-incident counts play no
// part in that choice.
//
// The matrix is built on internal/qmatrix.Dense, the same dense-array
// abstraction the merger's Hungarian solver uses, per the teacher
// pack's matrix.Matrix convention. Annealing reuses internal/anneal so
// this refiner cannot drift from the LNS refiner's acceptance semantics.
package qubo
