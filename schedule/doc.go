// Package schedule holds the core data model shared by every stage of
// the optimization pipeline: Stop, Route, Job, Chain, ScheduleItem,
// BusSchedule and the per-day/per-run envelopes around them. It also
// hosts the block classifier that turns raw Routes into Jobs tagged with
// one of the four daily time blocks.
package schedule
