package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func TestRoutePerBusChains_OneJobPerChain(t *testing.T) {
	jobs := []schedule.Job{
		{RouteID: "r1"},
		{RouteID: "r2"},
		{RouteID: "r3"},
	}

	chains := routePerBusChains(jobs)

	assert.Len(t, chains, len(jobs))
	for i, c := range chains {
		assert.Len(t, c.Jobs, 1)
		assert.Equal(t, jobs[i].RouteID, c.Jobs[0].RouteID)
	}
}

func TestIsContextErr_DetectsDeadlineAndCancellation(t *testing.T) {
	assert.True(t, isContextErr(context.DeadlineExceeded))
	assert.True(t, isContextErr(context.Canceled))
	assert.True(t, isContextErr(&SolverCrashedError{Stage: "x", Cause: context.DeadlineExceeded}))
	assert.False(t, isContextErr(errors.New("boom")))
}
