package chainbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func TestScoreArc_PrefersSameSchoolAndType(t *testing.T) {
	jobs := []schedule.Job{
		{Route: schedule.Route{SchoolID: "s1", Kind: schedule.KindEntry}},
		{Route: schedule.Route{SchoolID: "s1", Kind: schedule.KindEntry}, DurationMin: 10},
		{Route: schedule.Route{SchoolID: "s2", Kind: schedule.KindExit}, DurationMin: 10},
	}

	arc := Arc{From: 0, To: 1, TravelMinutes: 5, BestGapMin: 20}
	sameSchoolScore := scoreArc(arc, jobs[0], jobs[1])

	arc2 := Arc{From: 0, To: 2, TravelMinutes: 5, BestGapMin: 20}
	diffSchoolScore := scoreArc(arc2, jobs[0], jobs[2])

	assert.Greater(t, sameSchoolScore, diffSchoolScore)
}

func TestRankArcs_SortsDescending(t *testing.T) {
	jobs := []schedule.Job{
		{Route: schedule.Route{SchoolID: "s1"}},
		{Route: schedule.Route{SchoolID: "s1"}, DurationMin: 10},
		{Route: schedule.Route{SchoolID: "s9"}, DurationMin: 10},
	}
	arcs := []Arc{
		{From: 0, To: 2, TravelMinutes: 9, BestGapMin: 10},
		{From: 0, To: 1, TravelMinutes: 1, BestGapMin: 20},
	}

	ranked := rankArcs(arcs, jobs)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
}
