package geo

// MinutesOfDay represents a clock time as minutes since 00:00, in
// [0, 1440). Anchor times, durations, and shifts are all expressed in
// this unit throughout the core so that no component needs to parse or
// format wall-clock strings.
type MinutesOfDay int

// HHMM builds a MinutesOfDay from an hour and minute, matching the
// block-window literals used throughout the classifier (e.g. HHMM(8, 0)
// for 08:00).
func HHMM(hour, minute int) MinutesOfDay {
	return MinutesOfDay(hour*60 + minute)
}

// Add returns t shifted forward by delta minutes (delta may be negative).
func (t MinutesOfDay) Add(delta int) MinutesOfDay {
	return t + MinutesOfDay(delta)
}

// Sub returns the number of minutes from other to t (t - other).
func (t MinutesOfDay) Sub(other MinutesOfDay) int {
	return int(t - other)
}

// InWindow reports whether t falls in the closed interval [start, end].
func (t MinutesOfDay) InWindow(start, end MinutesOfDay) bool {
	return t >= start && t <= end
}

// Clock returns the (hour, minute) pair for t, mostly useful for
// logging/printing; the core never formats times for display itself.
func (t MinutesOfDay) Clock() (hour, minute int) {
	m := int(t) % 1440
	if m < 0 {
		m += 1440
	}

	return m / 60, m % 60
}
