package geo

import "math"

// Point is a WGS84 coordinate pair. A Point with both components within
// Epsilon of zero is treated by the block classifier as invalid (§4.2).
type Point struct {
	Lat float64
	Lon float64
}

// Epsilon is the threshold below which |Lat| and |Lon| are both treated
// as "no coordinate" (uninitialized input row).
const Epsilon = 1e-6

// Valid reports whether p carries a real coordinate, i.e. is not the
// zero-ish sentinel produced by malformed ingestion rows.
func (p Point) Valid() bool {
	return math.Abs(p.Lat) > Epsilon || math.Abs(p.Lon) > Epsilon
}

// RoundedKey rounds p to 5 decimal places (~1.1m at the equator) and
// returns the rounded pair, a stable value usable in a cache key. Matches the oracle's
// cache-key contract in spec §4.1.
func (p Point) RoundedKey() [2]float64 {
	const scale = 1e5
	return [2]float64{
		math.Round(p.Lat*scale) / scale,
		math.Round(p.Lon*scale) / scale,
	}
}
