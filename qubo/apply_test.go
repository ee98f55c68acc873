package qubo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func TestApplySelection_InsertsIntoChosenChain(t *testing.T) {
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{{RouteID: "r0"}}},
	}
	job := schedule.Job{RouteID: "hot", StartLoc: geo.Point{Lat: 1, Lon: 1}}
	groups := []Group{
		{Job: job, Candidates: []Candidate{{ChainID: "a", Pos: 1, Cost: 1}}},
	}

	result := ApplySelection(chains, groups, []int{0})
	require.Len(t, result, 1)
	require.Len(t, result[0].Jobs, 2)
	assert.Equal(t, "hot", result[0].Jobs[1].RouteID)
}

func TestApplySelection_SyntheticOpensNewChain(t *testing.T) {
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{{RouteID: "r0"}}},
	}
	job := schedule.Job{RouteID: "hot"}
	groups := []Group{
		{Job: job, Candidates: []Candidate{{ChainID: "a", Pos: 1, Cost: 1}}},
	}

	result := ApplySelection(chains, groups, []int{1}) // index 1 = synthetic
	require.Len(t, result, 2)
	assert.Len(t, result[1].Jobs, 1)
	assert.Equal(t, "hot", result[1].Jobs[0].RouteID)
}
