package maxflow

import (
	"context"
	"errors"
)

// ErrSourceNotFound is returned when the requested source vertex is
// absent from the graph.
var ErrSourceNotFound = errors.New("maxflow: source vertex not found")

// ErrSinkNotFound is returned when the requested sink vertex is absent
// from the graph.
var ErrSinkNotFound = errors.New("maxflow: sink vertex not found")

// Options configures Dinic. Zero value is valid: no context deadline,
// exhaust each blocking flow before rebuilding the level graph.
type Options struct {
	// Ctx allows cooperative cancellation of long-running searches,
	// checked between BFS level-graph builds and before each DFS push,
	// mirroring flow.FlowOptions' cancellation points.
	Ctx context.Context

	// LevelRebuildInterval, if > 0, rebuilds the level graph every N
	// augmentations instead of after the blocking flow is exhausted.
	// Zero means "exhaust blocking flow before rebuilding" (the Dinic
	// default).
	LevelRebuildInterval int
}

func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}
