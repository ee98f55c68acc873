// Package travel provides the travel-time oracle: a cached, bounded-
// concurrency front end over an OSRM-shaped HTTP routing service, with a
// haversine-based fallback when the service is unreachable or a route is
// missing. Positive results are cached with a TTL on top of an LRU
// eviction policy; failed lookups are cached too, under a shorter TTL, so
// a flaky upstream does not get hammered on every retry of a batch job.
package travel
