package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func TestRoute_Validate_RejectsAmbiguousKind(t *testing.T) {
	a := geo.HHMM(8, 0)
	d := geo.HHMM(14, 0)
	r := schedule.Route{
		ID:            "r1",
		Kind:          schedule.KindEntry,
		Stops:         []schedule.Stop{{}},
		ArrivalTime:   &a,
		DepartureTime: &d,
	}
	assert.ErrorIs(t, r.Validate(), schedule.ErrAmbiguousKind)
}

func TestRoute_Validate_RejectsEmptyStops(t *testing.T) {
	a := geo.HHMM(8, 0)
	r := schedule.Route{ID: "r1", Kind: schedule.KindEntry, ArrivalTime: &a}
	assert.ErrorIs(t, r.Validate(), schedule.ErrEmptyStops)
}

func TestRoute_Validate_OK(t *testing.T) {
	a := geo.HHMM(8, 0)
	r := schedule.Route{ID: "r1", Kind: schedule.KindEntry, Stops: []schedule.Stop{{}}, ArrivalTime: &a}
	assert.NoError(t, r.Validate())
}

func TestRoute_DurationMinutes_Floor(t *testing.T) {
	r := schedule.Route{Stops: []schedule.Stop{{TimeFromStart: 0}, {TimeFromStart: 5}}}
	assert.Equal(t, 15, r.DurationMinutes())
}

func TestJob_ShiftedStartEnd_Entry(t *testing.T) {
	a := geo.HHMM(9, 0)
	job := schedule.Job{
		Route:       schedule.Route{Kind: schedule.KindEntry},
		AnchorTime:  geo.HHMM(9, 0),
		DurationMin: 20,
	}
	_ = a
	assert.Equal(t, geo.HHMM(8, 40), job.ShiftedStart())
	assert.Equal(t, geo.HHMM(9, 0), job.ShiftedEnd())
}

func TestJob_ShiftedStartEnd_Exit(t *testing.T) {
	job := schedule.Job{
		Route:       schedule.Route{Kind: schedule.KindExit},
		AnchorTime:  geo.HHMM(14, 0),
		DurationMin: 30,
	}
	assert.Equal(t, geo.HHMM(14, 0), job.ShiftedStart())
	assert.Equal(t, geo.HHMM(14, 30), job.ShiftedEnd())
}

func TestJob_ShiftedAnchor_AppliesShift(t *testing.T) {
	job := schedule.Job{AnchorTime: geo.HHMM(9, 0), TimeShiftMin: -5}
	assert.Equal(t, geo.HHMM(8, 55), job.ShiftedAnchor())
}
