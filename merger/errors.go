package merger

import "errors"

// ErrNonSquareCost indicates solveAssignment was handed a cost matrix
// with more rows than columns; callers must pad to a square (or
// wide-rectangular, rows <= cols) matrix before calling.
var ErrNonSquareCost = errors.New("merger: cost matrix has more rows than columns")
