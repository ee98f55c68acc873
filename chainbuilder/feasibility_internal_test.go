package chainbuilder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

type fixedTravel struct{ minutes float64 }

func (f fixedTravel) Minutes(ctx context.Context, from, to geo.Point) (float64, error) {
	return f.minutes, nil
}

func TestBuildArcs_SkipsUnchainableJobs(t *testing.T) {
	jobs := []schedule.Job{
		{RouteID: "a", Route: schedule.Route{Kind: schedule.KindEntry}, AnchorTime: geo.HHMM(8, 0), Unchainable: true},
		{RouteID: "b", Route: schedule.Route{Kind: schedule.KindEntry}, AnchorTime: geo.HHMM(8, 30)},
	}
	opts := DefaultOptions()
	opts.Travel = fixedTravel{minutes: 1}
	opts.Ctx = context.Background()

	arcs, err := buildArcs(jobs, opts)
	require.NoError(t, err)
	assert.Empty(t, arcs)
}

func TestRespectsMinStartHour_RejectsTooEarly(t *testing.T) {
	job := schedule.Job{Route: schedule.Route{Kind: schedule.KindEntry}, AnchorTime: geo.HHMM(5, 2), DurationMin: 15}
	opts := DefaultOptions()
	opts.ShiftEarlier = 5
	opts.MinStartHour = geo.HHMM(5, 0)

	assert.False(t, respectsMinStartHour(job, opts))
}

func TestBestCaseGap_EntryPair(t *testing.T) {
	i := schedule.Job{Route: schedule.Route{Kind: schedule.KindEntry}, AnchorTime: geo.HHMM(8, 0)}
	j := schedule.Job{Route: schedule.Route{Kind: schedule.KindEntry}, AnchorTime: geo.HHMM(8, 30), DurationMin: 10}
	opts := DefaultOptions()
	opts.ShiftEarlier = 5
	opts.ShiftLater = 0

	gap := bestCaseGap(i, j, opts)
	assert.Equal(t, 25, gap)
}
