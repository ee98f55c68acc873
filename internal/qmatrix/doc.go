// Package qmatrix is a trimmed, row-major dense float64 matrix adapted
// from lvlath's matrix.Dense, kept to exactly the operations the QUBO
// encoder (§4.7) and the cross-block merger's Hungarian cost matrix
// (§4.4) need: allocate, read/write by (row, col), and add-in-place for
// accumulating penalty terms.
package qmatrix
