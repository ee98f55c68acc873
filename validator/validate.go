package validator

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func itemStartLoc(item schedule.ScheduleItem) geo.Point {
	if len(item.Stops) == 0 {
		return geo.Point{}
	}

	return item.Stops[0].Loc
}

func itemEndLoc(item schedule.ScheduleItem) geo.Point {
	if len(item.Stops) == 0 {
		return geo.Point{}
	}

	return item.Stops[len(item.Stops)-1].Loc
}

// ValidateBus checks every adjacent transition in bus.Items (assumed
// sorted by start time) against opts.Travel, returning one Incident per
// problem found. A route ID repeated within the same bus trips
// ErrDuplicateRouteInBus rather than silently producing nonsensical
// incidents.
//
// Complexity: O(n) oracle calls, where n = len(bus.Items).
func ValidateBus(ctx context.Context, day schedule.Weekday, bus schedule.BusSchedule, opts Options) ([]schedule.Incident, error) {
	seen := make(map[string]bool, len(bus.Items))
	for _, item := range bus.Items {
		if seen[item.RouteID] {
			return nil, ErrDuplicateRouteInBus
		}
		seen[item.RouteID] = true
	}

	var incidents []schedule.Incident

	for _, item := range bus.Items {
		if item.EndTime <= item.StartTime {
			incidents = append(incidents, schedule.Incident{
				RouteA:    item.RouteID,
				IssueType: schedule.IssueInvalidTimeRange,
				Severity:  schedule.SeverityError,
				Day:       day,
				BusID:     bus.BusID,
			})
		}
		if bus.AssignedVehicle.ID != "" && item.CapacityNeeded > bus.AssignedVehicle.SeatsMax {
			incidents = append(incidents, schedule.Incident{
				RouteA:    item.RouteID,
				IssueType: schedule.IssueCapacityExceeded,
				Severity:  schedule.SeverityError,
				Day:       day,
				BusID:     bus.BusID,
			})
		}
	}

	for i := 1; i < len(bus.Items); i++ {
		prev := bus.Items[i-1]
		next := bus.Items[i]

		timeAvailable := next.StartTime - prev.EndTime
		if timeAvailable < 0 {
			incidents = append(incidents, schedule.Incident{
				RouteA:        prev.RouteID,
				RouteB:        next.RouteID,
				IssueType:     schedule.IssueOverlappingRoutes,
				Severity:      schedule.SeverityError,
				TimeAvailable: timeAvailable,
				Day:           day,
				BusID:         bus.BusID,
			})
			continue
		}

		travelMin, err := opts.Travel.Minutes(ctx, itemEndLoc(prev), itemStartLoc(next))
		if err != nil {
			return nil, err
		}

		buffer := timeAvailable - int(travelMin)
		switch {
		case buffer < 0:
			incidents = append(incidents, schedule.Incident{
				RouteA:            prev.RouteID,
				RouteB:            next.RouteID,
				IssueType:         schedule.IssueInsufficientTime,
				Severity:          schedule.SeverityError,
				TimeAvailable:     timeAvailable,
				TravelTime:        int(travelMin),
				BufferMin:         buffer,
				Day:               day,
				BusID:             bus.BusID,
				SuggestedStartMin: prev.EndTime + int(travelMin) + opts.MinBufferMin,
			})
		case buffer < opts.MinBufferMin:
			incidents = append(incidents, schedule.Incident{
				RouteA:        prev.RouteID,
				RouteB:        next.RouteID,
				IssueType:     schedule.IssueTightBuffer,
				Severity:      schedule.SeverityWarning,
				TimeAvailable: timeAvailable,
				TravelTime:    int(travelMin),
				BufferMin:     buffer,
				Day:           day,
				BusID:         bus.BusID,
			})
		}
	}

	return incidents, nil
}

// ValidateDay checks every bus scheduled on day, bounding concurrent
// oracle-driven bus checks with the shared semaphore gate, and
// aggregates the result into a ValidationReport.
//
// Complexity: O(total items across buses) oracle calls, at most
// maxConcurrency() buses in flight at once.
func ValidateDay(ctx context.Context, day schedule.Weekday, buses []schedule.BusSchedule, opts Options) (schedule.ValidationReport, error) {
	sem := semaphore.NewWeighted(maxConcurrency())

	results := make([][]schedule.Incident, len(buses))
	errs := make([]error, len(buses))

	var wg sync.WaitGroup
	for i, bus := range buses {
		if err := sem.Acquire(ctx, 1); err != nil {
			return schedule.ValidationReport{}, err
		}
		wg.Add(1)
		go func(idx int, b schedule.BusSchedule) {
			defer wg.Done()
			defer sem.Release(1)
			incidents, err := ValidateBus(ctx, day, b, opts)
			results[idx] = incidents
			errs[idx] = err
		}(i, bus)
	}
	wg.Wait()

	report := schedule.ValidationReport{TotalBuses: len(buses)}
	for i, incidents := range results {
		if errs[i] != nil {
			return schedule.ValidationReport{}, errs[i]
		}
		hasError := false
		for _, inc := range incidents {
			report.Incidents = append(report.Incidents, inc)
			switch inc.Severity {
			case schedule.SeverityError:
				report.IncidentsError++
				hasError = true
			case schedule.SeverityWarning:
				report.IncidentsWarn++
			default:
				report.IncidentsInfo++
			}
		}
		if !hasError {
			report.FeasibleBuses++
		}
	}

	return report, nil
}
