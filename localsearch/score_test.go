package localsearch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/localsearch"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

type constantTravel struct{ minutes float64 }

func (c constantTravel) Minutes(ctx context.Context, from, to geo.Point) (float64, error) {
	return c.minutes, nil
}

func job(id string, anchor geo.MinutesOfDay, loc geo.Point, shift int) schedule.Job {
	return schedule.Job{
		RouteID:      id,
		Route:        schedule.Route{ID: id, Kind: schedule.KindEntry},
		AnchorTime:   anchor,
		DurationMin:  15,
		StartLoc:     loc,
		EndLoc:       loc,
		TimeShiftMin: shift,
	}
}

func TestScore_FewerBusesScoresLower(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	oneChain := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, 0), job("b", geo.HHMM(9, 0), loc, 0)}},
	}
	twoChains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, 0)}},
		{ID: "b", Jobs: []schedule.Job{job("b", geo.HHMM(9, 0), loc, 0)}},
	}

	travel := constantTravel{minutes: 5}
	w := localsearch.DefaultWeights()

	s1, err := localsearch.Score(context.Background(), oneChain, travel, w)
	require.NoError(t, err)
	s2, err := localsearch.Score(context.Background(), twoChains, travel, w)
	require.NoError(t, err)

	assert.Less(t, s1, s2)
}

func TestScore_PenalizesShift(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	unshifted := []schedule.Chain{{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, 0)}}}
	shifted := []schedule.Chain{{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, 5)}}}

	travel := constantTravel{minutes: 5}
	w := localsearch.DefaultWeights()

	s1, err := localsearch.Score(context.Background(), unshifted, travel, w)
	require.NoError(t, err)
	s2, err := localsearch.Score(context.Background(), shifted, travel, w)
	require.NoError(t, err)

	assert.Less(t, s1, s2)
}
