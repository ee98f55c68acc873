// Package pipeline runs the full per-day optimization state machine —
// ingest, baseline optimize, validate, iterate refine/validate, select
// best, fleet assign — and aggregates the per-weekday results into one
// PipelineResult, reporting progress through a history callback.
//
// Grounded on the teacher's plain-stdlib concurrency style: per-day
// pipelines run as goroutines coordinated by a manual sync.WaitGroup
// rather than an errgroup, since no goroutine-orchestration library
// appears anywhere in the retrieval pack.
package pipeline
