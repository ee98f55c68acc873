package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

func TestHHMM(t *testing.T) {
	assert.Equal(t, geo.MinutesOfDay(8*60+30), geo.HHMM(8, 30))
}

func TestMinutesOfDay_AddSub(t *testing.T) {
	t0 := geo.HHMM(8, 0)
	t1 := t0.Add(45)
	assert.Equal(t, geo.HHMM(8, 45), t1)
	assert.Equal(t, 45, t1.Sub(t0))
	assert.Equal(t, -45, t0.Sub(t1))
}

func TestMinutesOfDay_InWindow(t *testing.T) {
	start, end := geo.HHMM(8, 0), geo.HHMM(9, 30)
	assert.True(t, geo.HHMM(8, 0).InWindow(start, end))
	assert.True(t, geo.HHMM(9, 30).InWindow(start, end))
	assert.True(t, geo.HHMM(8, 45).InWindow(start, end))
	assert.False(t, geo.HHMM(7, 59).InWindow(start, end))
	assert.False(t, geo.HHMM(9, 31).InWindow(start, end))
}

func TestMinutesOfDay_Clock(t *testing.T) {
	h, m := geo.HHMM(16, 40).Clock()
	assert.Equal(t, 16, h)
	assert.Equal(t, 40, m)
}
