package pipeline

import "fmt"

// ObjectivePreset selects the weighting/refinement strategy the
// orchestrator applies during reoptimize_k, per §6.
type ObjectivePreset int

const (
	// ObjectiveMinBusesViability runs LNS only, weighted overwhelmingly
	// toward minimizing bus count.
	ObjectiveMinBusesViability ObjectivePreset = iota
	// ObjectiveMinBusesViabilityHybrid alternates LNS iterations with
	// QUBO hybrid passes over conflict-heavy routes.
	ObjectiveMinBusesViabilityHybrid
	// ObjectiveBalanced weights deadhead, overtime, and load balance
	// more evenly against bus count.
	ObjectiveBalanced
)

// String renders the preset's configuration name.
func (o ObjectivePreset) String() string {
	switch o {
	case ObjectiveMinBusesViability:
		return "min_buses_viability"
	case ObjectiveMinBusesViabilityHybrid:
		return "min_buses_viability_hybrid"
	case ObjectiveBalanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// ParseObjectivePreset parses the configuration name back into an
// ObjectivePreset, per the teacher's enum-with-methods convention
// (tsp.Algorithm, tsp.MatchingAlgo).
func ParseObjectivePreset(s string) (ObjectivePreset, error) {
	switch s {
	case "min_buses_viability":
		return ObjectiveMinBusesViability, nil
	case "min_buses_viability_hybrid":
		return ObjectiveMinBusesViabilityHybrid, nil
	case "balanced":
		return ObjectiveBalanced, nil
	default:
		return 0, fmt.Errorf("pipeline: unknown objective preset %q", s)
	}
}

// PipelineConfig holds every recognized pipeline option from §6. The
// config package binds this struct from environment variables and a
// YAML file via Viper; cmd/busopt binds it from Cobra flags.
type PipelineConfig struct {
	Objective                 ObjectivePreset
	MaxDurationSec            int
	MaxIterations             int
	UseMLAssignment           bool
	BalanceLoad               bool
	LoadBalanceHardSpreadLimit int
	LoadBalanceTargetBand     int
	InvalidRowsDropped        int
	Seed                      int64
	MinBufferMin              int
	MaxHotRoutes              int
}

// DefaultPipelineConfig returns the defaults named in §6: 300s wall
// clock, 2 refinement iterations after baseline, min_buses_viability
// objective, load balancing off.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Objective:      ObjectiveMinBusesViability,
		MaxDurationSec: 300,
		MaxIterations:  2,
		MinBufferMin:   10,
		MaxHotRoutes:   40,
	}
}
