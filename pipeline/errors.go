package pipeline

import (
	"errors"
	"fmt"
)

// ErrNoJobsForDay indicates a weekday has no classified jobs at all; the
// orchestrator emits an empty BusSchedule slice rather than treating
// this as a failure, since a day legitimately having no service is not
// a programming error.
var ErrNoJobsForDay = errors.New("pipeline: no jobs classified for this day")

// SolverError is the sum type for the three solver failure kinds
// (SolverTimeoutError, SolverInfeasibleError, SolverCrashedError). All
// three implement error and are dispatched by the type switch in
// asSolverError, which matches only an unwrapped value, mirroring
// flow.EdgeError's typed-error convention.
type SolverError interface {
	error
	solverError()
}

// SolverTimeoutError reports that a refinement stage (LNS or QUBO
// annealing) exceeded its iteration or wall-clock budget. Policy: keep
// the best feasible candidate found so far and continue.
type SolverTimeoutError struct {
	Stage string
}

func (e *SolverTimeoutError) Error() string {
	return fmt.Sprintf("pipeline: %s exceeded its budget", e.Stage)
}
func (*SolverTimeoutError) solverError() {}

// SolverInfeasibleError reports that a stage could place no feasible
// candidate at all (every chain and the synthetic new-chain option were
// rejected). Policy: the caller falls back to the pre-stage candidate.
type SolverInfeasibleError struct {
	Stage string
	Cause error
}

func (e *SolverInfeasibleError) Error() string {
	return fmt.Sprintf("pipeline: %s found no feasible candidate: %v", e.Stage, e.Cause)
}
func (e *SolverInfeasibleError) Unwrap() error { return e.Cause }
func (*SolverInfeasibleError) solverError()    {}

// SolverCrashedError wraps an unexpected error from a pipeline stage
// (oracle failure, internal invariant break surfaced rather than
// panicked). Policy: in baseline_optimize, retry once in conservative
// mode (ML ranking disabled) and fall back to one route per bus on a
// second failure; in a refinement iteration, the iteration loop stops
// and the candidates found so far are kept.
type SolverCrashedError struct {
	Stage string
	Cause error
}

func (e *SolverCrashedError) Error() string {
	return fmt.Sprintf("pipeline: %s crashed: %v", e.Stage, e.Cause)
}
func (e *SolverCrashedError) Unwrap() error { return e.Cause }
func (*SolverCrashedError) solverError()    {}
