package schedule

import (
	"errors"

	"github.com/odinx-svg/bus-route-optimizer-sub000/geo"
)

// ErrNoMatchingBlock indicates a route's anchor time falls outside all
// four configured block windows. The ingester is expected to reject such
// rows before they reach the core, so this is treated as a data problem
// the caller must surface, not silently drop.
var ErrNoMatchingBlock = errors.New("schedule: route anchor time matches no configured block")

// Window is a closed anchor-time interval plus the allowed time-shift
// tolerance for jobs classified into it. ShiftEarlier/ShiftLater are
// non-negative minute counts; a block that only tolerates earlier shifts
// (entries) sets ShiftLater to 0, and vice versa for exits.
type Window struct {
	Block       Block
	Start       geo.MinutesOfDay
	End         geo.MinutesOfDay
	ShiftEarlier int
	ShiftLater   int
}

// ClassifierConfig holds the four block windows and the floor below
// which no job's shifted start may fall. Defaults below are the
// [Open Question] values resolved in DESIGN.md from optimizer_v6.py's
// header comment; callers may override them via configuration.
type ClassifierConfig struct {
	Windows      [4]Window
	MinStartHour geo.MinutesOfDay
}

// DefaultClassifierConfig returns the four-block schedule documented in
// optimizer_v6.py: morning entries (08:00-09:30) and late-afternoon
// entries (16:20-16:40) may only shift earlier (a bus may arrive a child
// early, never late), tolerance 5 minutes; early-afternoon exits
// (14:00-16:10) and late-afternoon-evening exits (18:20-18:40) may only
// shift later (a bus may not leave before the dismissal bell), tolerance
// 10 minutes. A 05:00 floor applies to any shifted start.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Windows: [4]Window{
			{Block: BlockMorningEntry, Start: geo.HHMM(8, 0), End: geo.HHMM(9, 30), ShiftEarlier: 5, ShiftLater: 0},
			{Block: BlockEarlyAfternoonExit, Start: geo.HHMM(14, 0), End: geo.HHMM(16, 10), ShiftEarlier: 0, ShiftLater: 10},
			{Block: BlockLateAfternoonEntry, Start: geo.HHMM(16, 20), End: geo.HHMM(16, 40), ShiftEarlier: 5, ShiftLater: 0},
			{Block: BlockLateAfternoonEveningExit, Start: geo.HHMM(18, 20), End: geo.HHMM(18, 40), ShiftEarlier: 0, ShiftLater: 10},
		},
		MinStartHour: geo.HHMM(5, 0),
	}
}

// WindowFor returns the Window matching anchor, and ok=false if none
// does.
func (c ClassifierConfig) WindowFor(anchor geo.MinutesOfDay) (Window, bool) {
	for _, w := range c.Windows {
		if anchor.InWindow(w.Start, w.End) {
			return w, true
		}
	}

	return Window{}, false
}

// Classify converts a Route into a Job for the given day, tagging it
// with its block (ShiftTolerance resolves the block's shift tolerance).
// Coordinates deemed invalid
// (|lat|<eps && |lon|<eps, per geo.Point.Valid) mark the job Unchainable
// so the chain builder only ever places it in a self-chain.
func Classify(cfg ClassifierConfig, route Route, day Weekday) (Job, error) {
	anchor := route.AnchorTime()
	window, ok := cfg.WindowFor(anchor)
	if !ok {
		return Job{}, ErrNoMatchingBlock
	}

	start := route.StartLoc()
	end := route.EndLoc()

	return Job{
		RouteID:     route.ID,
		Route:       route,
		Day:         day,
		Block:       window.Block,
		AnchorTime:  anchor,
		DurationMin: route.DurationMinutes(),
		StartLoc:    start,
		EndLoc:      end,
		Unchainable: !start.Valid() || !end.Valid(),
	}, nil
}

// ClassifyAll classifies every route active on day, skipping routes that
// don't list day among their Days. Routes that fail classification are
// returned separately rather than aborting the whole batch, mirroring
// the "never propagate a single bad row" failure policy of §7.
func ClassifyAll(cfg ClassifierConfig, routes []Route, day Weekday) (jobs []Job, rejected []Route) {
	for _, r := range routes {
		if !activeOn(r, day) {
			continue
		}
		job, err := Classify(cfg, r, day)
		if err != nil {
			rejected = append(rejected, r)
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, rejected
}

func activeOn(r Route, day Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}

	return false
}

// ShiftTolerance returns the (earlier, later) minute tolerance for job,
// resolved from cfg by the job's block.
func ShiftTolerance(cfg ClassifierConfig, block Block) (earlier, later int) {
	for _, w := range cfg.Windows {
		if w.Block == block {
			return w.ShiftEarlier, w.ShiftLater
		}
	}

	return 0, 0
}
