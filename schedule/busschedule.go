package schedule

import "sort"

// ScheduleItem is the output-facing projection of a Job placed inside a
// Chain: everything a consumer of the final schedule needs, without the
// internal bookkeeping fields (Unchainable, Route) that only matter
// during optimization.
type ScheduleItem struct {
	RouteID           string
	StartTime         int // minutes of day
	EndTime           int
	Kind              RouteKind
	OriginalStartTime int
	TimeShiftMin      int
	DeadheadMin       int
	CapacityNeeded    int
	Stops             []Stop
	SchoolName        string
	ContractID        string
}

// ItemFromJob derives the outward-facing ScheduleItem for job, with
// deadheadMin supplied by the caller (the travel time consumed getting
// from the previous job's end location to this job's start location).
func ItemFromJob(job Job, deadheadMin int) ScheduleItem {
	return ScheduleItem{
		RouteID:           job.RouteID,
		StartTime:         int(job.ShiftedStart()),
		EndTime:           int(job.ShiftedEnd()),
		Kind:              job.Route.Kind,
		OriginalStartTime: int(job.AnchorTime),
		TimeShiftMin:      job.TimeShiftMin,
		DeadheadMin:       deadheadMin,
		CapacityNeeded:    job.Route.CapacityNeeded,
		Stops:             job.Route.Stops,
		SchoolName:        job.Route.SchoolName,
		ContractID:        job.Route.ContractID,
	}
}

// AssignedVehicle records the vehicle profile matched to a bus by the
// fleet assignment pass. A zero value (ID == "") means the bus is
// virtual: no active profile could satisfy its required capacity.
type AssignedVehicle struct {
	ID       string
	Code     string
	Plate    string
	SeatsMin int
	SeatsMax int
}

// BusSchedule is one bus's full day of work: its items in start-time
// order, plus the vehicle ultimately matched to it.
type BusSchedule struct {
	BusID              string
	Items              []ScheduleItem
	MinRequiredSeats   int
	AssignedVehicle    AssignedVehicle
}

// SortByStartTime orders Items ascending by StartTime, the invariant the
// validator and every downstream consumer assumes.
func (b *BusSchedule) SortByStartTime() {
	sort.Slice(b.Items, func(i, j int) bool {
		return b.Items[i].StartTime < b.Items[j].StartTime
	})
}

// JobCount returns len(Items), used by the load-balance scorer.
func (b BusSchedule) JobCount() int { return len(b.Items) }

// DaySchedule maps each weekday to the buses operating that day.
type DaySchedule map[Weekday][]BusSchedule

// IncidentIssue classifies a feasibility problem found by the validator.
type IncidentIssue string

const (
	IssueInsufficientTime  IncidentIssue = "insufficient_time"
	IssueTightBuffer       IncidentIssue = "tight_buffer"
	IssueOverlappingRoutes IncidentIssue = "overlapping_routes"
	IssueInvalidTimeRange  IncidentIssue = "invalid_time_range"
	IssueCapacityExceeded  IncidentIssue = "capacity_exceeded"
)

// IncidentSeverity ranks how serious an Incident is.
type IncidentSeverity string

const (
	SeverityError   IncidentSeverity = "error"
	SeverityWarning IncidentSeverity = "warning"
	SeverityInfo    IncidentSeverity = "info"
)

// Incident is a single feasibility problem found while validating a
// BusSchedule's adjacent transitions.
type Incident struct {
	RouteA        string
	RouteB        string // empty if the incident concerns a single route
	IssueType     IncidentIssue
	Severity      IncidentSeverity
	TimeAvailable int
	TravelTime    int
	BufferMin     int
	Day           Weekday
	BusID         string

	// SuggestedStartMin is the earliest minute-of-day at which RouteB
	// could depart and clear MIN_BUFFER against RouteA; zero unless
	// IssueType is IssueInsufficientTime.
	SuggestedStartMin int
}

// ValidationReport aggregates incidents for one pipeline candidate,
// per-day and globally.
type ValidationReport struct {
	TotalBuses      int
	FeasibleBuses   int
	IncidentsError  int
	IncidentsWarn   int
	IncidentsInfo   int
	Incidents       []Incident
}

// VehicleProfile is a real vehicle the fleet assignment pass can match a
// BusSchedule against.
type VehicleProfile struct {
	ID       string
	Code     string
	Plate    string
	SeatsMin int
	SeatsMax int
	Status   string // only "active" profiles are eligible
}

// SolverStatus reports the outcome vocabulary from spec §7/§8: whether a
// day's (or the whole run's) candidate was produced by the ordinary
// optimization path, degraded after a timeout, or fell all the way back
// to the one-route-per-bus safety net.
type SolverStatus string

const (
	StatusOK                  SolverStatus = "ok"
	StatusTimeout             SolverStatus = "timeout"
	StatusFallbackRoutePerBus SolverStatus = "fallback_route_per_bus"
)

// worsePriority ranks SolverStatus values so a multi-day aggregate can
// report the single worst status seen across its days.
var worsePriority = map[SolverStatus]int{
	StatusOK:                  0,
	StatusTimeout:             1,
	StatusFallbackRoutePerBus: 2,
}

// WorseStatus returns whichever of a, b ranks worse by worsePriority.
func WorseStatus(a, b SolverStatus) SolverStatus {
	if worsePriority[b] > worsePriority[a] {
		return b
	}

	return a
}

// Metrics summarizes one pipeline candidate for ranking and reporting.
type Metrics struct {
	BestBuses          int
	LowerBoundBuses    int
	OptimalityGap      float64
	SplitCount         int
	InfeasibleBuses    int
	LoadSpreadRoutes   int
	LoadAbsDevSum      int
	AvgDeadhead        float64
	AvgEfficiency      float64
	FleetAssigned      int
	FleetVirtualBuses  int
	ErrorIssues        int
	WarningIssues      int
	SolverStatus       SolverStatus
}

// HistoryEntry is one state transition in the orchestrator's run,
// mapped onto a 0-100 progress window for external reporting. It carries
// no timestamp.
type HistoryEntry struct {
	Phase     string
	Progress  int
	Message   string
	Extra     map[string]interface{}
}

// PipelineResult is the final, immutable output of one orchestrator run.
type PipelineResult struct {
	ScheduleByDay         DaySchedule
	ValidationReport      map[Weekday]ValidationReport
	Metrics               Metrics
	History               []HistoryEntry
	SelectedCandidateLabel string
}
