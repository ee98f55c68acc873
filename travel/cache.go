package travel

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// cacheKey rounds both endpoints to 5 decimal places (geo.Point.RoundedKey) so that
// near-duplicate coordinates (repeated stop lookups with float drift)
// share one cache slot, mirroring the 5-decimal rounding the original
// router service applied before keying its in-memory cache.
type cacheKey struct {
	a, b [2]float64
}

func newCacheKey(a, b geo.Point) cacheKey {
	return cacheKey{a: a.RoundedKey(), b: b.RoundedKey()}
}

type cacheEntry struct {
	minutes   float64
	storedAt  time.Time
	isNegative bool
}

// ttlCache wraps an LRU cache with a TTL check performed on read, since
// golang-lru/v2 evicts by capacity, not by age. Positive and negative
// results are stored in the same underlying cache but carry independent
// TTLs via entry.isNegative.
type ttlCache struct {
	lru        *lru.Cache[cacheKey, cacheEntry]
	positiveTTL time.Duration
	negativeTTL time.Duration
	now        func() time.Time
}

func newTTLCache(capacity int, positiveTTL, negativeTTL time.Duration, now func() time.Time) (*ttlCache, error) {
	c, err := lru.New[cacheKey, cacheEntry](capacity)
	if err != nil {
		return nil, err
	}

	return &ttlCache{lru: c, positiveTTL: positiveTTL, negativeTTL: negativeTTL, now: now}, nil
}

// get returns (minutes, isNegative, found). An expired entry counts as
// not found and is evicted eagerly so the cache doesn't accumulate stale
// rows between TTL checks.
func (c *ttlCache) get(key cacheKey) (float64, bool, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return 0, false, false
	}

	ttl := c.positiveTTL
	if entry.isNegative {
		ttl = c.negativeTTL
	}
	if c.now().Sub(entry.storedAt) > ttl {
		c.lru.Remove(key)
		return 0, false, false
	}

	return entry.minutes, entry.isNegative, true
}

func (c *ttlCache) putPositive(key cacheKey, minutes float64) {
	c.lru.Add(key, cacheEntry{minutes: minutes, storedAt: c.now(), isNegative: false})
}

func (c *ttlCache) putNegative(key cacheKey) {
	c.lru.Add(key, cacheEntry{storedAt: c.now(), isNegative: true})
}

func (c *ttlCache) len() int { return c.lru.Len() }

func (c *ttlCache) purge() { c.lru.Purge() }

// snapshot returns every live (non-expired) positive entry, keyed by its
// rounded coordinate pair, for persistence to disk.
func (c *ttlCache) snapshot() map[cacheKey]float64 {
	out := make(map[cacheKey]float64)
	for _, key := range c.lru.Keys() {
		minutes, negative, ok := c.get(key)
		if ok && !negative {
			out[key] = minutes
		}
	}

	return out
}
