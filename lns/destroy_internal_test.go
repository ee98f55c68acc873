package lns

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func mkJob(id string, anchor geo.MinutesOfDay, loc geo.Point, school string) schedule.Job {
	return schedule.Job{
		RouteID:     id,
		Route:       schedule.Route{ID: id, Kind: schedule.KindEntry, SchoolID: school},
		AnchorTime:  anchor,
		DurationMin: 15,
		StartLoc:    loc,
		EndLoc:      loc,
	}
}

func TestDestroyCount_FloorsAtOne(t *testing.T) {
	assert.Equal(t, 1, destroyCount(5, 0.01))
	assert.Equal(t, 0, destroyCount(0, 0.5))
	assert.Equal(t, 5, destroyCount(5, 2.0))
}

func TestDestroy_RandomRemovesRequestedCount(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	chains := []schedule.Chain{
		{ID: "a", Jobs: []schedule.Job{mkJob("a", geo.HHMM(8, 0), loc, "s1"), mkJob("b", geo.HHMM(9, 0), loc, "s1")}},
	}
	remaining, removed := destroy(chains, 1, DestroyRandom, nil, rand.New(rand.NewSource(1)))
	assert.Len(t, removed, 1)
	total := 0
	for _, c := range remaining {
		total += c.Len()
	}
	assert.Equal(t, 1, total)
}

func TestRelatedness_SameSchoolIsMoreRelated(t *testing.T) {
	loc := geo.Point{Lat: 1, Lon: 1}
	seed := mkJob("seed", geo.HHMM(8, 0), loc, "s1")
	sameSchool := mkJob("same", geo.HHMM(8, 5), loc, "s1")
	diffSchool := mkJob("diff", geo.HHMM(8, 5), loc, "s2")

	assert.Less(t, relatedness(seed, sameSchool), relatedness(seed, diffSchool))
}
