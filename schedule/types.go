package schedule

import (
	"errors"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// Sentinel errors for route/job preconditions. Routes are assumed valid
// by the time they reach this package (the ingestion collaborator
// rejects malformed records); these exist to crash loudly on a
// programming error rather than silently accept garbage.
var (
	ErrEmptyStops    = errors.New("schedule: route has no stops")
	ErrAmbiguousKind = errors.New("schedule: route must set exactly one of arrival_time/departure_time")
	ErrUnknownKind   = errors.New("schedule: route kind must be entry or exit")
	ErrEmptyRouteID  = errors.New("schedule: route id is empty")
)

// RouteKind distinguishes a morning/pickup route from a drop-off route.
type RouteKind string

const (
	KindEntry RouteKind = "entry"
	KindExit  RouteKind = "exit"
)

// Block identifies one of the four daily scheduling windows a Job falls
// into. The numbering matches the chronological order of the blocks
// through a school day.
type Block int

const (
	BlockUnknown Block = iota
	BlockMorningEntry
	BlockEarlyAfternoonExit
	BlockLateAfternoonEntry
	BlockLateAfternoonEveningExit
)

// String renders the block name for logging and diagnostics.
func (b Block) String() string {
	switch b {
	case BlockMorningEntry:
		return "morning_entry"
	case BlockEarlyAfternoonExit:
		return "early_afternoon_exit"
	case BlockLateAfternoonEntry:
		return "late_afternoon_entry"
	case BlockLateAfternoonEveningExit:
		return "late_afternoon_evening_exit"
	default:
		return "unknown"
	}
}

// Weekday restricts operating days to the five-day school week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// String renders the three-letter weekday abbreviation.
func (w Weekday) String() string {
	if w < Monday || w > Friday {
		return "???"
	}
	return weekdayNames[w]
}

// Stop is one boarding/alighting point along a Route. Immutable after
// ingestion.
type Stop struct {
	Name          string
	Loc           geo.Point
	Order         int
	TimeFromStart int // minutes from the route's first stop
	IsSchool      bool
	Passengers    int
}

// Route is an input job: a school-bound transport leg with a fixed set
// of stops and a pinned anchor time (arrival for entries, departure for
// exits).
type Route struct {
	ID              string
	Name            string
	Stops           []Stop
	SchoolID        string
	SchoolName      string
	ArrivalTime     *geo.MinutesOfDay // set only for entries
	DepartureTime   *geo.MinutesOfDay // set only for exits
	CapacityNeeded  int
	ContractID      string
	Kind            RouteKind
	Days            []Weekday
}

// Validate checks the invariants spec'd for a Route: non-empty stops, a
// known kind, and exactly one of ArrivalTime/DepartureTime set matching
// that kind. Called defensively at ingestion boundaries; a failure here
// indicates the upstream ingester let an invalid record through.
func (r Route) Validate() error {
	if r.ID == "" {
		return ErrEmptyRouteID
	}
	if len(r.Stops) == 0 {
		return ErrEmptyStops
	}
	switch r.Kind {
	case KindEntry:
		if r.ArrivalTime == nil || r.DepartureTime != nil {
			return ErrAmbiguousKind
		}
	case KindExit:
		if r.DepartureTime == nil || r.ArrivalTime != nil {
			return ErrAmbiguousKind
		}
	default:
		return ErrUnknownKind
	}

	return nil
}

// AnchorTime returns the route's pinned clock time: arrival for entries,
// departure for exits. Panics if called on a Route that hasn't passed
// Validate, since that is a programming error, not a data error.
func (r Route) AnchorTime() geo.MinutesOfDay {
	if r.Kind == KindEntry {
		return *r.ArrivalTime
	}
	return *r.DepartureTime
}

// DurationMinutes estimates the route's on-board duration as the largest
// TimeFromStart across its stops, floored at minDurationFloor so a
// single-stop or degenerate route never reports zero travel time.
const minDurationFloor = 15

func (r Route) DurationMinutes() int {
	max := 0
	for _, s := range r.Stops {
		if s.TimeFromStart > max {
			max = s.TimeFromStart
		}
	}
	if max < minDurationFloor {
		return minDurationFloor
	}

	return max
}

// StartLoc and EndLoc resolve a route's boundary stops. For entries the
// boarding stop is first and the school is last; for exits it's the
// reverse.
func (r Route) StartLoc() geo.Point { return r.Stops[0].Loc }
func (r Route) EndLoc() geo.Point   { return r.Stops[len(r.Stops)-1].Loc }

// Job is a Route normalized for a specific day and tagged with its
// scheduling block. Jobs are the unit the chain builder operates on.
type Job struct {
	RouteID        string
	Route          Route
	Day            Weekday
	Block          Block
	AnchorTime     geo.MinutesOfDay
	DurationMin    int
	StartLoc       geo.Point
	EndLoc         geo.Point
	Unchainable    bool // invalid coordinates: only a self-chain is allowed
	TimeShiftMin   int  // applied shift from the original anchor, signed
}

// ShiftedAnchor returns the job's effective anchor time after applying
// TimeShiftMin.
func (j Job) ShiftedAnchor() geo.MinutesOfDay {
	return j.AnchorTime.Add(j.TimeShiftMin)
}

// ShiftedStart and ShiftedEnd give the occupied wall-clock interval for
// an entry/exit job after shifting: entries must arrive at AnchorTime,
// so the job starts duration-minutes earlier; exits must depart at
// AnchorTime, so the job ends duration-minutes later.
func (j Job) ShiftedStart() geo.MinutesOfDay {
	if j.Route.Kind == KindEntry {
		return j.ShiftedAnchor().Add(-j.DurationMin)
	}

	return j.ShiftedAnchor()
}

func (j Job) ShiftedEnd() geo.MinutesOfDay {
	if j.Route.Kind == KindEntry {
		return j.ShiftedAnchor()
	}

	return j.ShiftedAnchor().Add(j.DurationMin)
}

// StartAtShift and EndAtShift compute the occupied interval j would have
// under an arbitrary candidate shift (not necessarily j.TimeShiftMin).
// Both are monotonically increasing in shift regardless of RouteKind,
// which the chain builder's feasibility search relies on: the latest
// reachable start is always at shift = +tolerance, the earliest
// reachable end always at shift = -tolerance.
func (j Job) StartAtShift(shift int) geo.MinutesOfDay {
	anchor := j.AnchorTime.Add(shift)
	if j.Route.Kind == KindEntry {
		return anchor.Add(-j.DurationMin)
	}

	return anchor
}

func (j Job) EndAtShift(shift int) geo.MinutesOfDay {
	anchor := j.AnchorTime.Add(shift)
	if j.Route.Kind == KindExit {
		return anchor.Add(j.DurationMin)
	}

	return anchor
}
