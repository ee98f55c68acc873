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

func TestRun_RelocatesToEliminateABus(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, 0)}},
		{ID: "b", Jobs: []schedule.Job{job("b", geo.HHMM(9, 0), loc, 0)}},
	}

	opts := localsearch.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}
	opts.Ctx = context.Background()

	result, err := localsearch.Run(chains, opts)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Len(t, result[0].Jobs, 2)
}

func TestRun_LeavesInfeasiblePairAsTwoBuses(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{job("a", geo.HHMM(8, 0), loc, 0)}},
		{ID: "b", Jobs: []schedule.Job{job("b", geo.HHMM(8, 5), loc, 0)}},
	}

	opts := localsearch.DefaultOptions()
	opts.Travel = constantTravel{minutes: 60}
	opts.Ctx = context.Background()

	result, err := localsearch.Run(chains, opts)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestRun_NoChainsReturnsEmpty(t *testing.T) {
	opts := localsearch.DefaultOptions()
	opts.Travel = constantTravel{minutes: 5}

	result, err := localsearch.Run(nil, opts)
	require.NoError(t, err)
	assert.Empty(t, result)
}
