package pipeline

import (
	"context"
	"math"
	"strconv"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// TravelTimeSource resolves a one-way travel time in minutes between two
// points. travel.Oracle satisfies this interface structurally.
type TravelTimeSource interface {
	Minutes(ctx context.Context, from, to geo.Point) (float64, error)
}

// projectSchedule derives one BusSchedule per chain, pricing the
// deadhead leg before each job (zero for a chain's first job) via
// travel. Chains are assumed already sorted in execution order by the
// refinement stage that produced them.
//
// Complexity: O(sum of chain lengths) oracle calls.
func projectSchedule(ctx context.Context, chains []schedule.Chain, travel TravelTimeSource) ([]schedule.BusSchedule, error) {
	buses := make([]schedule.BusSchedule, 0, len(chains))

	for ci, chain := range chains {
		items := make([]schedule.ScheduleItem, 0, chain.Len())
		for i, job := range chain.Jobs {
			deadheadMin := 0
			if i > 0 {
				prev := chain.Jobs[i-1]
				minutes, err := travel.Minutes(ctx, prev.EndLoc, job.StartLoc)
				if err != nil {
					return nil, err
				}
				deadheadMin = int(minutes)
			}
			items = append(items, schedule.ItemFromJob(job, deadheadMin))
		}

		bus := schedule.BusSchedule{
			BusID: chainBusID(chain, ci),
			Items: items,
		}
		bus.SortByStartTime()
		buses = append(buses, bus)
	}

	return buses, nil
}

func chainBusID(chain schedule.Chain, idx int) string {
	if chain.ID != "" {
		return "bus-" + chain.ID
	}

	return "bus-anon-" + strconv.Itoa(idx)
}

// computeMetrics summarizes one candidate's buses plus its validation
// report into the Metrics struct the ranking comparator reads.
//
// avg_efficiency is defined as the mean, across every non-first item,
// of productive duration over (productive duration + deadhead); this is
// a simplification not spelled out verbatim by §4.11, recorded as an
// Open Question resolution in DESIGN.md.
func computeMetrics(buses []schedule.BusSchedule, report schedule.ValidationReport, lowerBound, splitCount int) schedule.Metrics {
	jobCounts := make([]float64, len(buses))
	var totalDeadhead float64
	var deadheadLegs int
	var efficiencySum float64
	var efficiencyLegs int

	for i, b := range buses {
		jobCounts[i] = float64(b.JobCount())
		for j, item := range b.Items {
			if j == 0 {
				continue
			}
			totalDeadhead += float64(item.DeadheadMin)
			deadheadLegs++
			denom := float64(item.DeadheadMin) + float64(item.EndTime-item.StartTime)
			if denom > 0 {
				efficiencySum += float64(item.EndTime-item.StartTime) / denom
				efficiencyLegs++
			}
		}
	}

	avgDeadhead := 0.0
	if deadheadLegs > 0 {
		avgDeadhead = totalDeadhead / float64(deadheadLegs)
	}
	avgEfficiency := 0.0
	if efficiencyLegs > 0 {
		avgEfficiency = efficiencySum / float64(efficiencyLegs)
	}

	spread, absDev := loadSpread(jobCounts)

	return schedule.Metrics{
		BestBuses:         len(buses),
		LowerBoundBuses:   lowerBound,
		OptimalityGap:     optimalityGap(len(buses), lowerBound),
		SplitCount:        splitCount,
		InfeasibleBuses:   report.TotalBuses - report.FeasibleBuses,
		LoadSpreadRoutes:  spread,
		LoadAbsDevSum:     absDev,
		AvgDeadhead:       avgDeadhead,
		AvgEfficiency:     avgEfficiency,
		ErrorIssues:       report.IncidentsError,
		WarningIssues:     report.IncidentsWarn,
	}
}

func optimalityGap(busCount, lowerBound int) float64 {
	if lowerBound <= 0 {
		return 0
	}
	gap := float64(busCount-lowerBound) / float64(lowerBound)
	if gap < 0 {
		return 0
	}

	return gap
}

func loadSpread(jobCounts []float64) (spreadRoutes, absDevSum int) {
	if len(jobCounts) == 0 {
		return 0, 0
	}

	min, max := jobCounts[0], jobCounts[0]
	var mean float64
	for _, c := range jobCounts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
		mean += c
	}
	mean /= float64(len(jobCounts))

	var absDev float64
	for _, c := range jobCounts {
		absDev += math.Abs(c - mean)
	}

	return int(max - min), int(absDev)
}
