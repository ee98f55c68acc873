package chainbuilder

import "github.com/odinx-svg/bus-route-optimizer-sub000/schedule"

// SolverStatus mirrors the vocabulary an ILP-backed builder would report,
// even though the underlying solver here is the exact max-flow reduction
// rather than a MIP relaxation.
type SolverStatus string

const (
	StatusOptimal SolverStatus = "optimal"
	StatusTimeout SolverStatus = "timeout"
)

// Diagnostics reports the outcome of one Build call using the same field
// names a MIP-solver-backed implementation would expose.
type Diagnostics struct {
	SolverStatus    SolverStatus
	LowerBoundBuses int
	OptimalityGap   float64
	SplitCount      int
}

// Result is the output of Build: the chains produced plus diagnostics.
type Result struct {
	Chains      []schedule.Chain
	Diagnostics Diagnostics
}
