package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
	"github.com/odinx-svg/bus-route-optimizer-sub000/validator"
)

type constantTravel struct{ minutes float64 }

func (c constantTravel) Minutes(ctx context.Context, from, to geo.Point) (float64, error) {
	return c.minutes, nil
}

func stop(loc geo.Point) []schedule.Stop {
	return []schedule.Stop{{Loc: loc}}
}

func TestValidateBus_FlagsOverlap(t *testing.T) {
	bus := schedule.BusSchedule{
		BusID: "bus-1",
		Items: []schedule.ScheduleItem{
			{RouteID: "r1", StartTime: 480, EndTime: 520, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
			{RouteID: "r2", StartTime: 510, EndTime: 560, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
		},
	}

	opts := validator.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}

	incidents, err := validator.ValidateBus(context.Background(), schedule.Monday, bus, opts)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, schedule.IssueOverlappingRoutes, incidents[0].IssueType)
	assert.Equal(t, schedule.SeverityError, incidents[0].Severity)
}

func TestValidateBus_FlagsTightBuffer(t *testing.T) {
	bus := schedule.BusSchedule{
		BusID: "bus-1",
		Items: []schedule.ScheduleItem{
			{RouteID: "r1", StartTime: 480, EndTime: 520, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
			{RouteID: "r2", StartTime: 528, EndTime: 560, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
		},
	}

	opts := validator.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}
	opts.MinBufferMin = 10

	incidents, err := validator.ValidateBus(context.Background(), schedule.Monday, bus, opts)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, schedule.IssueTightBuffer, incidents[0].IssueType)
	assert.Equal(t, schedule.SeverityWarning, incidents[0].Severity)
}

func TestValidateBus_NoIncidentsWhenFeasible(t *testing.T) {
	bus := schedule.BusSchedule{
		BusID: "bus-1",
		Items: []schedule.ScheduleItem{
			{RouteID: "r1", StartTime: 480, EndTime: 520, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
			{RouteID: "r2", StartTime: 540, EndTime: 560, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
		},
	}

	opts := validator.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}

	incidents, err := validator.ValidateBus(context.Background(), schedule.Monday, bus, opts)
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestValidateBus_DuplicateRouteReturnsError(t *testing.T) {
	bus := schedule.BusSchedule{
		Items: []schedule.ScheduleItem{
			{RouteID: "r1", StartTime: 480, EndTime: 520},
			{RouteID: "r1", StartTime: 540, EndTime: 560},
		},
	}

	opts := validator.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}

	_, err := validator.ValidateBus(context.Background(), schedule.Monday, bus, opts)
	assert.ErrorIs(t, err, validator.ErrDuplicateRouteInBus)
}

func TestValidateDay_AggregatesAcrossBuses(t *testing.T) {
	buses := []schedule.BusSchedule{
		{BusID: "b1", Items: []schedule.ScheduleItem{
			{RouteID: "r1", StartTime: 480, EndTime: 520, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
			{RouteID: "r2", StartTime: 540, EndTime: 560, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
		}},
		{BusID: "b2", Items: []schedule.ScheduleItem{
			{RouteID: "r3", StartTime: 480, EndTime: 520, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
			{RouteID: "r4", StartTime: 500, EndTime: 560, Stops: stop(geo.Point{Lat: 1, Lon: 1})},
		}},
	}

	opts := validator.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}

	report, err := validator.ValidateDay(context.Background(), schedule.Monday, buses, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalBuses)
	assert.Equal(t, 1, report.FeasibleBuses)
	assert.Equal(t, 1, report.IncidentsError)
}
