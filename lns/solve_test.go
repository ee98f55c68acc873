package lns_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/lns"
	"github.com/odinx-svg/bus-route-optimizer-sub000/localsearch"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

type constantTravel struct{ minutes float64 }

func (c constantTravel) Minutes(ctx context.Context, from, to geo.Point) (float64, error) {
	return c.minutes, nil
}

func job(id string, anchor geo.MinutesOfDay, loc geo.Point, school string) schedule.Job {
	return schedule.Job{
		RouteID:     id,
		Route:       schedule.Route{ID: id, Kind: schedule.KindEntry, SchoolID: school},
		AnchorTime:  anchor,
		DurationMin: 15,
		StartLoc:    loc,
		EndLoc:      loc,
	}
}

func TestRun_ImprovesOrMaintainsScore(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, "s1")}},
		{ID: "b", Jobs: []schedule.Job{job("b", geo.HHMM(9, 0), loc, "s1")}},
		{ID: "c", Jobs: []schedule.Job{job("c", geo.HHMM(10, 0), loc, "s1")}},
	}

	opts := lns.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}
	opts.Seed = 42
	opts.MaxIterations = 20
	opts.Ctx = context.Background()

	result, err := lns.Run(chains, opts)
	require.NoError(t, err)

	before, err := localsearch.Score(context.Background(), chains, constantTravel{minutes: 5}, opts.Weights)
	require.NoError(t, err)
	after, err := localsearch.Score(context.Background(), result, constantTravel{minutes: 5}, opts.Weights)
	require.NoError(t, err)

	assert.LessOrEqual(t, after, before)
}

func TestRun_DeterministicGivenSeed(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, "s1")}},
		{ID: "b", Jobs: []schedule.Job{job("b", geo.HHMM(9, 0), loc, "s2")}},
	}

	opts := lns.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}
	opts.Seed = 7
	opts.MaxIterations = 10
	opts.Ctx = context.Background()

	r1, err := lns.Run(chains, opts)
	require.NoError(t, err)
	r2, err := lns.Run(chains, opts)
	require.NoError(t, err)

	assert.Equal(t, len(r1), len(r2))
}

func TestRun_PreservesAllJobs(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, "s1"), job("b", geo.HHMM(9, 0), loc, "s1")}},
		{ID: "c", Jobs: []schedule.Job{job("c", geo.HHMM(10, 0), loc, "s2")}},
	}

	opts := lns.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}
	opts.Seed = 3
	opts.MaxIterations = 15
	opts.Ctx = context.Background()

	result, err := lns.Run(chains, opts)
	require.NoError(t, err)

	total := 0
	for _, c := range result {
		total += c.Len()
	}
	assert.Equal(t, 3, total)
}
