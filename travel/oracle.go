package travel

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// maxConcurrency caps outstanding provider calls at min(2*NumCPU, 12),
// the same bound the validator applies to its own concurrent bus checks.
func maxConcurrency() int64 {
	n := int64(2 * runtime.NumCPU())
	if n > 12 {
		n = 12
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Options configures an Oracle.
type Options struct {
	CacheCapacity int
	PositiveTTL   time.Duration
	NegativeTTL   time.Duration
	SnapshotPath  string
	now           func() time.Time
}

func (o *Options) normalize() {
	if o.CacheCapacity <= 0 {
		o.CacheCapacity = 10000
	}
	if o.PositiveTTL <= 0 {
		o.PositiveTTL = 24 * time.Hour
	}
	if o.NegativeTTL <= 0 {
		o.NegativeTTL = 5 * time.Minute
	}
	if o.now == nil {
		o.now = time.Now
	}
}

// Oracle resolves travel times between stops, preferring a cached or
// freshly-fetched provider result and falling back to a haversine
// estimate when the provider fails, per §4.1. Invalid coordinates are
// not estimated: Minutes returns ErrInvalidPoint for them.
type Oracle struct {
	provider Provider
	cache    *ttlCache
	sem      *semaphore.Weighted
	opts     Options
	mu       sync.Mutex // serializes Snapshot, including the call Close makes
}

// NewOracle builds an Oracle over provider, loading any existing
// snapshot at opts.SnapshotPath.
func NewOracle(provider Provider, opts Options) (*Oracle, error) {
	opts.normalize()

	cache, err := newTTLCache(opts.CacheCapacity, opts.PositiveTTL, opts.NegativeTTL, opts.now)
	if err != nil {
		return nil, err
	}

	o := &Oracle{
		provider: provider,
		cache:    cache,
		sem:      semaphore.NewWeighted(maxConcurrency()),
		opts:     opts,
	}

	if opts.SnapshotPath != "" {
		entries, err := loadSnapshot(opts.SnapshotPath)
		if err != nil {
			logrus.Warnf("travel: failed to load snapshot %q: %v", opts.SnapshotPath, err)
		} else {
			for key, minutes := range entries {
				o.cache.putPositive(key, minutes)
			}
			logrus.Infof("travel: preloaded %d cached travel times from %q", len(entries), opts.SnapshotPath)
		}
	}

	return o, nil
}

// Minutes returns the estimated one-way travel time between from and to,
// in minutes. A cache hit short-circuits the provider entirely; a cache
// miss acquires the bounded-concurrency gate before calling the
// provider, and falls back to the haversine estimate on any provider
// error (including a cached negative result).
func (o *Oracle) Minutes(ctx context.Context, from, to geo.Point) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, ErrInvalidPoint
	}

	key := newCacheKey(from, to)
	if minutes, negative, ok := o.cache.get(key); ok {
		if !negative {
			return minutes, nil
		}
		return geo.FallbackMinutes(from, to), nil
	}

	if err := o.sem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	minutes, err := o.provider.Minutes(ctx, from, to)
	o.sem.Release(1)

	if err != nil {
		o.cache.putNegative(key)
		logrus.Debugf("travel: provider error for (%v -> %v): %v, falling back to haversine", from, to, err)
		return geo.FallbackMinutes(from, to), nil
	}

	o.cache.putPositive(key, minutes)

	return minutes, nil
}

// Snapshot persists the current cache contents to opts.SnapshotPath, a
// no-op if no path was configured.
func (o *Oracle) Snapshot() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.opts.SnapshotPath == "" {
		return nil
	}

	return saveSnapshot(o.opts.SnapshotPath, o.cache.snapshot())
}

// Close flushes the snapshot (if configured) and releases cache memory.
func (o *Oracle) Close() error {
	err := o.Snapshot()
	o.cache.purge()

	return err
}

// CacheLen reports the number of live cache entries, for diagnostics.
func (o *Oracle) CacheLen() int { return o.cache.len() }
