package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func entryRoute(id string, anchor geo.MinutesOfDay) schedule.Route {
	a := anchor
	return schedule.Route{
		ID:   id,
		Kind: schedule.KindEntry,
		Stops: []schedule.Stop{
			{Loc: geo.Point{Lat: 1, Lon: 1}, TimeFromStart: 0},
			{Loc: geo.Point{Lat: 2, Lon: 2}, TimeFromStart: 20},
		},
		ArrivalTime:    &a,
		CapacityNeeded: 10,
		Days:           []schedule.Weekday{schedule.Monday},
	}
}

func TestClassify_MorningEntry(t *testing.T) {
	cfg := schedule.DefaultClassifierConfig()
	route := entryRoute("r1", geo.HHMM(8, 30))

	job, err := schedule.Classify(cfg, route, schedule.Monday)
	require.NoError(t, err)
	assert.Equal(t, schedule.BlockMorningEntry, job.Block)
	assert.Equal(t, 20, job.DurationMin)
}

func TestClassify_NoMatchingBlock(t *testing.T) {
	cfg := schedule.DefaultClassifierConfig()
	route := entryRoute("r2", geo.HHMM(12, 0))

	_, err := schedule.Classify(cfg, route, schedule.Monday)
	assert.ErrorIs(t, err, schedule.ErrNoMatchingBlock)
}

func TestClassify_InvalidCoordinatesMarkedUnchainable(t *testing.T) {
	cfg := schedule.DefaultClassifierConfig()
	route := entryRoute("r3", geo.HHMM(8, 30))
	route.Stops[0].Loc = geo.Point{}

	job, err := schedule.Classify(cfg, route, schedule.Monday)
	require.NoError(t, err)
	assert.True(t, job.Unchainable)
}

func TestClassifyAll_SkipsInactiveDays(t *testing.T) {
	cfg := schedule.DefaultClassifierConfig()
	route := entryRoute("r4", geo.HHMM(8, 30))

	jobs, rejected := schedule.ClassifyAll(cfg, []schedule.Route{route}, schedule.Tuesday)
	assert.Empty(t, jobs)
	assert.Empty(t, rejected)
}

func TestClassifyAll_CollectsRejected(t *testing.T) {
	cfg := schedule.DefaultClassifierConfig()
	good := entryRoute("r5", geo.HHMM(8, 30))
	bad := entryRoute("r6", geo.HHMM(12, 0))

	jobs, rejected := schedule.ClassifyAll(cfg, []schedule.Route{good, bad}, schedule.Monday)
	assert.Len(t, jobs, 1)
	assert.Len(t, rejected, 1)
	assert.Equal(t, "r6", rejected[0].ID)
}

func TestShiftTolerance_ExitsAllowLaterOnly(t *testing.T) {
	cfg := schedule.DefaultClassifierConfig()
	earlier, later := schedule.ShiftTolerance(cfg, schedule.BlockEarlyAfternoonExit)
	assert.Equal(t, 0, earlier)
	assert.Equal(t, 10, later)
}
