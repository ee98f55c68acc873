package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
	"github.com/odinx-svg/bus-route-optimizer-sub000/validator"
)

var weekdays = [5]schedule.Weekday{
	schedule.Monday, schedule.Tuesday, schedule.Wednesday, schedule.Thursday, schedule.Friday,
}

// Run executes the full per-weekday pipeline over routes and aggregates
// the results into one PipelineResult, per §4.10/§2. Each weekday's
// pipeline runs in its own goroutine, coordinated by a plain
// sync.WaitGroup rather than an errgroup (no goroutine-orchestration
// library appears anywhere in the retrieval pack); progress is reported
// through progress, which may be called concurrently from any day's
// goroutine and must be safe for that.
//
// Complexity: O(days) goroutines, each bounded by the per-day pipeline's
// own complexity; wall-clock is roughly the slowest single day's run.
func Run(ctx context.Context, cfg PipelineConfig, routes []schedule.Route, vehicles []schedule.VehicleProfile, travel TravelTimeSource, progress func(schedule.HistoryEntry)) (schedule.PipelineResult, error) {
	if cfg.MaxDurationSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.MaxDurationSec)*time.Second)
		defer cancel()
	}

	classifierCfg := schedule.DefaultClassifierConfig()

	vOpts := validator.DefaultOptions()
	vOpts.MinBufferMin = cfg.MinBufferMin

	reports := make([]dayReport, len(weekdays))
	errs := make([]error, len(weekdays))

	var wg sync.WaitGroup
	for i, day := range weekdays {
		jobs, _ := schedule.ClassifyAll(classifierCfg, routes, day)

		wg.Add(1)
		go func(idx int, d schedule.Weekday, dayJobs []schedule.Job) {
			defer wg.Done()
			report, err := runDay(ctx, d, dayJobs, vehicles, travel, vOpts, classifierCfg, cfg, progress)
			reports[idx] = report
			errs[idx] = err
		}(i, day, jobs)
	}
	wg.Wait()

	// A day whose pipeline hard-failed (a programming error, not one of
	// the recoverable SolverFallback/BudgetExceeded conditions runDay
	// already degrades internally) still contributes an empty, clearly
	// labeled schedule rather than voiding the other days' results; the
	// combined error is still surfaced to the caller via errors.Join.
	var hardErrs []error
	for i, err := range errs {
		if err != nil {
			hardErrs = append(hardErrs, err)
			reports[i] = dayReport{day: weekdays[i], metrics: schedule.Metrics{SolverStatus: schedule.StatusFallbackRoutePerBus}}
		}
	}

	return aggregate(cfg, reports), errors.Join(hardErrs...)
}

// aggregate folds every weekday's dayReport into one PipelineResult.
// Additive metrics (bus counts, issue counts) sum across days; rate
// metrics (avg_deadhead, avg_efficiency, optimality_gap) are averaged
// weighted by each day's bus count. History entries are concatenated in
// weekday order regardless of goroutine completion order, keeping the
// trace reproducible.
func aggregate(cfg PipelineConfig, reports []dayReport) schedule.PipelineResult {
	result := schedule.PipelineResult{
		ScheduleByDay:          make(schedule.DaySchedule),
		ValidationReport:       make(map[schedule.Weekday]schedule.ValidationReport),
		SelectedCandidateLabel: cfg.Objective.String(),
	}
	result.Metrics.SolverStatus = schedule.StatusOK

	var weightedDeadhead, weightedEfficiency, weightedGap float64
	var totalBuses float64

	for _, r := range reports {
		result.ScheduleByDay[r.day] = r.buses
		result.ValidationReport[r.day] = r.report
		result.History = append(result.History, r.history...)

		weight := float64(len(r.buses))
		totalBuses += weight
		weightedDeadhead += r.metrics.AvgDeadhead * weight
		weightedEfficiency += r.metrics.AvgEfficiency * weight
		weightedGap += r.metrics.OptimalityGap * weight

		result.Metrics.BestBuses += r.metrics.BestBuses
		result.Metrics.LowerBoundBuses += r.metrics.LowerBoundBuses
		result.Metrics.SplitCount += r.metrics.SplitCount
		result.Metrics.InfeasibleBuses += r.metrics.InfeasibleBuses
		result.Metrics.ErrorIssues += r.metrics.ErrorIssues
		result.Metrics.WarningIssues += r.metrics.WarningIssues
		result.Metrics.FleetAssigned += r.metrics.FleetAssigned
		result.Metrics.FleetVirtualBuses += r.metrics.FleetVirtualBuses
		if r.metrics.LoadSpreadRoutes > result.Metrics.LoadSpreadRoutes {
			result.Metrics.LoadSpreadRoutes = r.metrics.LoadSpreadRoutes
		}
		result.Metrics.LoadAbsDevSum += r.metrics.LoadAbsDevSum
		result.Metrics.SolverStatus = schedule.WorseStatus(result.Metrics.SolverStatus, r.metrics.SolverStatus)
	}

	if totalBuses > 0 {
		result.Metrics.AvgDeadhead = weightedDeadhead / totalBuses
		result.Metrics.AvgEfficiency = weightedEfficiency / totalBuses
		result.Metrics.OptimalityGap = weightedGap / totalBuses
	}

	return result
}
