package schedule

// Chain is an ordered sequence of Jobs assigned to a single bus. Chains
// are the unit the local search, LNS, and QUBO refiners mutate; a Chain
// is only valid once every adjacent pair has passed a feasibility check
// against the travel-time oracle.
type Chain struct {
	ID   string
	Jobs []Job
}

// Tail and Head return the chain's last and first jobs. Callers must not
// call these on an empty chain; an empty chain is a programming error
// produced only by a bug in the builder.
func (c Chain) Head() Job { return c.Jobs[0] }
func (c Chain) Tail() Job { return c.Jobs[len(c.Jobs)-1] }

// Len reports the number of jobs in the chain.
func (c Chain) Len() int { return len(c.Jobs) }

// Clone returns a deep copy of the chain; the Jobs slice is new, but
// each Job's Route is shared (routes are immutable after ingestion).
func (c Chain) Clone() Chain {
	jobs := make([]Job, len(c.Jobs))
	copy(jobs, c.Jobs)

	return Chain{ID: c.ID, Jobs: jobs}
}

// Append returns a new chain with job appended, without mutating c.
func (c Chain) Append(job Job) Chain {
	jobs := make([]Job, len(c.Jobs), len(c.Jobs)+1)
	copy(jobs, c.Jobs)
	jobs = append(jobs, job)

	return Chain{ID: c.ID, Jobs: jobs}
}

// Concat returns a new chain formed by appending other's jobs after c's,
// keeping c's ID. Used by the cross-block merger when it joins a
// morning-chain tail to an afternoon-chain head.
func (c Chain) Concat(other Chain) Chain {
	jobs := make([]Job, 0, len(c.Jobs)+len(other.Jobs))
	jobs = append(jobs, c.Jobs...)
	jobs = append(jobs, other.Jobs...)

	return Chain{ID: c.ID, Jobs: jobs}
}
