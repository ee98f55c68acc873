// Package geo provides the small set of geometry and time utilities the
// optimization core needs: great-circle distance between stops, and
// minutes-of-day / time-shift arithmetic for anchor times.
//
// Nothing here performs I/O. Every function is pure and safe for
// concurrent use without synchronization.
package geo
