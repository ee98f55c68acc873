// Package merger extends chains across adjacent blocks: given the tails
// of one block's chains and the heads of the next block's chains, it
// finds a maximum-weight feasible pairing (penalizing idle gap and
// deadhead, excluding infeasible pairs entirely) and splices matched
// chains end-to-end, solved exactly with the Hungarian algorithm over a
// dense cost matrix.
package merger
