package travel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

func TestTTLCache_ExpiresPositiveEntry(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	c, err := newTTLCache(10, time.Minute, time.Second, now)
	require.NoError(t, err)

	key := newCacheKey(geo.Point{Lat: 1, Lon: 1}, geo.Point{Lat: 2, Lon: 2})
	c.putPositive(key, 5.0)

	clock = clock.Add(2 * time.Minute)
	_, _, found := c.get(key)
	assert.False(t, found)
}

func TestTTLCache_NegativeEntryShorterTTL(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	c, err := newTTLCache(10, time.Hour, 30*time.Second, now)
	require.NoError(t, err)

	key := newCacheKey(geo.Point{Lat: 1, Lon: 1}, geo.Point{Lat: 2, Lon: 2})
	c.putNegative(key)

	clock = clock.Add(31 * time.Second)
	_, _, found := c.get(key)
	assert.False(t, found)
}

func TestTTLCache_SnapshotOnlyReturnsPositive(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	c, err := newTTLCache(10, time.Hour, time.Hour, now)
	require.NoError(t, err)

	posKey := newCacheKey(geo.Point{Lat: 1, Lon: 1}, geo.Point{Lat: 2, Lon: 2})
	negKey := newCacheKey(geo.Point{Lat: 3, Lon: 3}, geo.Point{Lat: 4, Lon: 4})
	c.putPositive(posKey, 3.0)
	c.putNegative(negKey)

	snap := c.snapshot()
	assert.Len(t, snap, 1)
	assert.Equal(t, 3.0, snap[posKey])
}
