package pipeline

import (
	"context"
	"errors"
	"strconv"

	"github.com/odinx-svg/bus-route-optimizer-sub000/chainbuilder"
	"github.com/odinx-svg/bus-route-optimizer-sub000/fleet"
	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/anneal"
	"github.com/odinx-svg/bus-route-optimizer-sub000/lns"
	"github.com/odinx-svg/bus-route-optimizer-sub000/localsearch"
	"github.com/odinx-svg/bus-route-optimizer-sub000/merger"
	"github.com/odinx-svg/bus-route-optimizer-sub000/qubo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
	"github.com/odinx-svg/bus-route-optimizer-sub000/validator"
)

// blockOrder lists the four blocks in chronological order, the order
// the cross-block merger connects them in, per §4.4.
var blockOrder = [4]schedule.Block{
	schedule.BlockMorningEntry,
	schedule.BlockEarlyAfternoonExit,
	schedule.BlockLateAfternoonEntry,
	schedule.BlockLateAfternoonEveningExit,
}

// dayReport is the full per-day state the orchestrator threads through
// ingest → baseline_optimize → validate → reoptimize → select_best →
// fleet_assign.
type dayReport struct {
	day      schedule.Weekday
	buses    []schedule.BusSchedule
	report   schedule.ValidationReport
	metrics  schedule.Metrics
	history  []schedule.HistoryEntry
}

func emit(history *[]schedule.HistoryEntry, progress func(schedule.HistoryEntry), entry schedule.HistoryEntry) {
	*history = append(*history, entry)
	if progress != nil {
		progress(entry)
	}
}

func groupByBlock(jobs []schedule.Job) map[schedule.Block][]schedule.Job {
	grouped := make(map[schedule.Block][]schedule.Job)
	for _, j := range jobs {
		grouped[j.Block] = append(grouped[j.Block], j)
	}

	return grouped
}

// baselineOptimize runs chain builder + cross-block merger + local
// search once, producing candidate C0 plus its split count.
func baselineOptimize(ctx context.Context, jobs []schedule.Job, travel TravelTimeSource, classifierCfg schedule.ClassifierConfig, cfg PipelineConfig) ([]schedule.Chain, int, int, error) {
	grouped := groupByBlock(jobs)

	var perBlockChains [4][]schedule.Chain
	lowerBound := 0
	splitCount := 0

	for i, block := range blockOrder {
		blockJobs := grouped[block]
		if len(blockJobs) == 0 {
			continue
		}

		cbOpts := chainbuilder.DefaultOptions()
		cbOpts.Travel = travel
		cbOpts.Ctx = ctx
		cbOpts.UseMLRanking = cfg.UseMLAssignment
		cbOpts.MinStartHour = classifierCfg.MinStartHour
		cbOpts.ShiftEarlier, cbOpts.ShiftLater = schedule.ShiftTolerance(classifierCfg, block)

		result, err := chainbuilder.Build(blockJobs, cbOpts)
		if err != nil {
			return nil, 0, 0, &SolverCrashedError{Stage: "chain_builder", Cause: err}
		}

		perBlockChains[i] = result.Chains
		lowerBound += result.Diagnostics.LowerBoundBuses
		splitCount += result.Diagnostics.SplitCount
	}

	chains := perBlockChains[0]
	mergeOpts := merger.DefaultOptions()
	mergeOpts.Travel = travel
	mergeOpts.Ctx = ctx

	for i := 1; i < 4; i++ {
		next := perBlockChains[i]
		if len(next) == 0 {
			continue
		}
		if len(chains) == 0 {
			chains = next
			continue
		}

		merged, err := merger.Merge(chains, next, mergeOpts)
		if err != nil {
			return nil, 0, 0, &SolverCrashedError{Stage: "cross_block_merger", Cause: err}
		}
		chains = merged
	}

	lsOpts := localsearch.Options{
		Travel:        travel,
		MinBufferMin:  cfg.MinBufferMin,
		Weights:       weightsForObjective(cfg.Objective),
		MaxIterations: localsearch.DefaultMaxIterations,
		Ctx:           ctx,
	}
	refined, err := localsearch.Run(chains, lsOpts)
	if err != nil {
		return nil, 0, 0, &SolverCrashedError{Stage: "local_search", Cause: err}
	}

	return refined, lowerBound, splitCount, nil
}

// isContextErr reports whether err is or wraps a context cancellation or
// deadline, the BudgetExceeded condition from §7.
func isContextErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// routePerBusChains assigns every job its own single-job chain, the
// SolverFallback safety net from §7 when the primary builder cannot
// produce a candidate even after a conservative retry.
func routePerBusChains(jobs []schedule.Job) []schedule.Chain {
	chains := make([]schedule.Chain, 0, len(jobs))
	for i, j := range jobs {
		chains = append(chains, schedule.Chain{ID: "fallback-" + strconv.Itoa(i), Jobs: []schedule.Job{j}})
	}

	return chains
}

// baselineWithFallback runs baselineOptimize, retries once in
// conservative mode (ML ranking disabled) on failure, and falls back to
// one route per bus if the retry also fails, per §7's SolverFallback
// policy. It never returns an error: the safety net always produces a
// candidate, labeled with the SolverStatus the caller should report.
func baselineWithFallback(ctx context.Context, jobs []schedule.Job, travel TravelTimeSource, classifierCfg schedule.ClassifierConfig, cfg PipelineConfig) ([]schedule.Chain, int, int, schedule.SolverStatus) {
	chains, lowerBound, splitCount, err := baselineOptimize(ctx, jobs, travel, classifierCfg, cfg)
	if err == nil {
		return chains, lowerBound, splitCount, schedule.StatusOK
	}

	conservative := cfg
	conservative.UseMLAssignment = false
	chains, lowerBound, splitCount, err2 := baselineOptimize(ctx, jobs, travel, classifierCfg, conservative)
	if err2 == nil {
		return chains, lowerBound, splitCount, schedule.StatusOK
	}

	status := schedule.StatusFallbackRoutePerBus
	if isContextErr(err2) {
		status = schedule.StatusTimeout
	}

	return routePerBusChains(jobs), 0, 0, status
}

// filterByLoadBalance applies §6's per-day load-balance knobs to the
// pool of candidates select_best chooses among: candidates whose
// LoadSpreadRoutes exceeds the hard cap are excluded outright (unless
// every candidate would be excluded, in which case the cap cannot be
// honored and the pool is left alone); among the survivors, candidates
// within the comfortable target band are preferred when any exist. Both
// knobs are no-ops unless BalanceLoad is set.
func filterByLoadBalance(candidates []candidate, cfg PipelineConfig) []candidate {
	if !cfg.BalanceLoad {
		return candidates
	}

	within := candidates
	if cfg.LoadBalanceHardSpreadLimit > 0 {
		var kept []candidate
		for _, c := range within {
			if c.metrics.LoadSpreadRoutes <= cfg.LoadBalanceHardSpreadLimit {
				kept = append(kept, c)
			}
		}
		if len(kept) > 0 {
			within = kept
		}
	}

	if cfg.LoadBalanceTargetBand > 0 {
		var banded []candidate
		for _, c := range within {
			if c.metrics.LoadSpreadRoutes <= cfg.LoadBalanceTargetBand {
				banded = append(banded, c)
			}
		}
		if len(banded) > 0 {
			within = banded
		}
	}

	return within
}

// weightsForObjective maps an ObjectivePreset to the multi-objective
// score weighting LNS and local search optimize toward, per §6.
func weightsForObjective(o ObjectivePreset) localsearch.Weights {
	switch o {
	case ObjectiveBalanced:
		return localsearch.Weights{
			Buses:    1000.0,
			Deadhead: 20.0,
			Overtime: 40.0,
			Shift:    2.0,
			Balance:  20.0,
			Fuel:     1.0,
			CO2:      1.0,
		}
	default:
		return localsearch.DefaultWeights()
	}
}

// reoptimize runs one LNS pass, and — under the hybrid preset — an
// additional QUBO hybrid pass over the hottest remaining routes, seeded
// with the LNS output, per §4.10 step 4.
func reoptimize(ctx context.Context, chains []schedule.Chain, travel TravelTimeSource, cfg PipelineConfig, seed int64) ([]schedule.Chain, error) {
	lnsOpts := lns.DefaultOptions()
	lnsOpts.Travel = travel
	lnsOpts.Weights = weightsForObjective(cfg.Objective)
	lnsOpts.MinBufferMin = cfg.MinBufferMin
	lnsOpts.Seed = seed
	lnsOpts.Ctx = ctx

	refined, err := lns.Run(chains, lnsOpts)
	if err != nil {
		return nil, &SolverCrashedError{Stage: "lns", Cause: err}
	}

	if cfg.Objective != ObjectiveMinBusesViabilityHybrid {
		return refined, nil
	}

	hot := selectHotJobs(refined, cfg.MaxHotRoutes)
	if len(hot) == 0 {
		return refined, nil
	}

	groups, err := buildHotGroups(ctx, refined, hot, travel, cfg.MinBufferMin)
	if err != nil {
		return nil, &SolverCrashedError{Stage: "qubo_groups", Cause: err}
	}
	groups = qubo.TrimToBudget(groups, 0)

	Q, vars, err := qubo.Build(groups, qubo.DefaultLambdaAssign, qubo.DefaultLambdaConflict, 0)
	if err != nil {
		return refined, &SolverInfeasibleError{Stage: "qubo_build", Cause: err}
	}

	selected, err := qubo.Solve(groups, Q, vars, anneal.DefaultSchedule(), qubo.DefaultIterations, seed)
	if err != nil {
		return nil, &SolverCrashedError{Stage: "qubo_solve", Cause: err}
	}

	return qubo.ApplySelection(refined, groups, selected), nil
}

// runDay executes the full per-day state machine from §4.10: ingest
// (classify) was already done by the caller; this starts at
// baseline_optimize and runs through fleet_assign.
func runDay(ctx context.Context, day schedule.Weekday, jobs []schedule.Job, vehicles []schedule.VehicleProfile, travel TravelTimeSource, vOpts validator.Options, classifierCfg schedule.ClassifierConfig, cfg PipelineConfig, progress func(schedule.HistoryEntry)) (dayReport, error) {
	var history []schedule.HistoryEntry

	emit(&history, progress, schedule.HistoryEntry{Phase: "ingest", Progress: 0, Message: "classified jobs", Extra: map[string]interface{}{"day": day.String(), "jobs": len(jobs)}})

	if len(jobs) == 0 {
		return dayReport{day: day, history: history, metrics: schedule.Metrics{SolverStatus: schedule.StatusOK}}, nil
	}

	baseline, lowerBound, splitCount, dayStatus := baselineWithFallback(ctx, jobs, travel, classifierCfg, cfg)
	if dayStatus != schedule.StatusOK {
		emit(&history, progress, schedule.HistoryEntry{Phase: "baseline_optimize", Progress: 20, Message: "primary builder failed, fell back to one route per bus", Extra: map[string]interface{}{"day": day.String(), "status": string(dayStatus)}})
	} else {
		emit(&history, progress, schedule.HistoryEntry{Phase: "baseline_optimize", Progress: 20, Message: "baseline candidate built", Extra: map[string]interface{}{"day": day.String(), "chains": len(baseline)}})
	}

	candidates := []candidate{}

	c0, err := evaluateCandidate(ctx, "baseline", baseline, travel, vOpts, day, lowerBound, splitCount)
	if err != nil {
		emit(&history, progress, schedule.HistoryEntry{Phase: "budget_reached", Progress: 35, Message: "budget exhausted evaluating baseline, falling back to one route per bus", Extra: map[string]interface{}{"day": day.String()}})
		dayStatus = schedule.WorseStatus(dayStatus, schedule.StatusTimeout)
		baseline = routePerBusChains(jobs)
		lowerBound, splitCount = 0, 0
		c0, err = evaluateCandidate(ctx, "baseline", baseline, travel, vOpts, day, lowerBound, splitCount)
		if err != nil {
			return dayReport{}, err
		}
	}
	candidates = append(candidates, c0)
	emit(&history, progress, schedule.HistoryEntry{Phase: "validate", Progress: 35, Message: "baseline validated", Extra: map[string]interface{}{"day": day.String(), "error_issues": c0.metrics.ErrorIssues}})

	current := baseline
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultPipelineConfig().MaxIterations
	}

	for k := 1; k <= maxIter; k++ {
		progressPct := 35 + (k*50)/maxIter

		refined, err := reoptimize(ctx, current, travel, cfg, cfg.Seed+int64(k))
		var solverErr SolverError
		if err != nil {
			if asSolverError(err, &solverErr) {
				emit(&history, progress, schedule.HistoryEntry{Phase: "reoptimize_" + strconv.Itoa(k), Progress: progressPct, Message: solverErr.Error(), Extra: map[string]interface{}{"day": day.String()}})
				dayStatus = schedule.WorseStatus(dayStatus, schedule.StatusTimeout)
				break
			}
			return dayReport{}, err
		}
		emit(&history, progress, schedule.HistoryEntry{Phase: "reoptimize_" + strconv.Itoa(k), Progress: progressPct, Message: "refinement iteration complete", Extra: map[string]interface{}{"day": day.String(), "chains": len(refined)}})

		ck, err := evaluateCandidate(ctx, "iter_"+strconv.Itoa(k), refined, travel, vOpts, day, lowerBound, splitCount)
		if err != nil {
			return dayReport{}, err
		}
		emit(&history, progress, schedule.HistoryEntry{Phase: "validate_" + strconv.Itoa(k), Progress: progressPct + 2, Message: "iteration validated", Extra: map[string]interface{}{"day": day.String(), "error_issues": ck.metrics.ErrorIssues}})

		improved := compareCandidates(ck, candidates[len(candidates)-1]) < 0
		current = refined
		candidates = append(candidates, ck)
		if !improved {
			break
		}
	}

	best, risky := selectBest(filterByLoadBalance(candidates, cfg))
	message := "best candidate selected"
	if risky {
		message = "best candidate selected (select_with_risk: every candidate split a chain)"
	}
	best.metrics.SolverStatus = dayStatus
	emit(&history, progress, schedule.HistoryEntry{Phase: "select_best", Progress: 90, Message: message, Extra: map[string]interface{}{"day": day.String(), "label": best.label, "status": string(dayStatus)}})

	assigned := fleet.Assign(best.buses, vehicles)
	virtual := 0
	for _, b := range assigned {
		if b.AssignedVehicle.ID == "" {
			virtual++
		}
	}
	best.metrics.FleetAssigned = len(assigned) - virtual
	best.metrics.FleetVirtualBuses = virtual

	emit(&history, progress, schedule.HistoryEntry{Phase: "fleet_assign", Progress: 100, Message: "vehicles matched", Extra: map[string]interface{}{"day": day.String(), "virtual_buses": virtual}})

	return dayReport{
		day:     day,
		buses:   assigned,
		report:  best.report,
		metrics: best.metrics,
		history: history,
	}, nil
}

func evaluateCandidate(ctx context.Context, label string, chains []schedule.Chain, travel TravelTimeSource, vOpts validator.Options, day schedule.Weekday, lowerBound, splitCount int) (candidate, error) {
	buses, err := projectSchedule(ctx, chains, travel)
	if err != nil {
		return candidate{}, err
	}

	vOpts.Travel = travel
	vOpts.Ctx = ctx
	report, err := validator.ValidateDay(ctx, day, buses, vOpts)
	if err != nil {
		return candidate{}, err
	}

	metrics := computeMetrics(buses, report, lowerBound, splitCount)

	return candidate{label: label, buses: buses, report: report, metrics: metrics}, nil
}

func asSolverError(err error, target *SolverError) bool {
	switch e := err.(type) {
	case *SolverTimeoutError:
		*target = e
		return true
	case *SolverInfeasibleError:
		*target = e
		return true
	case *SolverCrashedError:
		*target = e
		return true
	default:
		return false
	}
}

