package fleet

import (
	"sort"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// oversizePenalty and undercutPenalty weight the composite fit score:
// a vehicle much larger than required is mildly penalized (wasted
// capacity), a vehicle whose minimum seat count already exceeds the
// requirement is penalized more heavily (it can never shrink to fit a
// lighter route later in the week).
const (
	oversizePenalty = 0.5
	undercutPenalty = 1.0
)

// minRequiredSeats returns the largest CapacityNeeded across bus's
// items, the bus's minimum viable vehicle size.
func minRequiredSeats(bus schedule.BusSchedule) int {
	max := 0
	for _, item := range bus.Items {
		if item.CapacityNeeded > max {
			max = item.CapacityNeeded
		}
	}

	return max
}

// fitScore scores how well profile fits a bus requiring requirement
// seats; lower is better. Returns false if profile cannot physically
// seat the requirement at all.
func fitScore(profile schedule.VehicleProfile, requirement int) (float64, bool) {
	if profile.SeatsMax < requirement {
		return 0, false
	}

	score := float64(profile.SeatsMax - requirement)
	if profile.SeatsMin > requirement {
		score += float64(profile.SeatsMin-requirement) * undercutPenalty
	}
	score += float64(profile.SeatsMax-requirement) * oversizePenalty

	return score, true
}

// Assign matches each bus to the active vehicle profile minimizing
// fitScore, vehicles used at most once per day. Buses are processed in
// descending required-seats order so the most demanding buses claim
// compatible vehicles first; unmatched buses keep a zero-value
// AssignedVehicle, marking them "virtual" per §4.9.
//
// Complexity: O(B*P log P) where B is bus count and P is active
// profile count.
func Assign(buses []schedule.BusSchedule, profiles []schedule.VehicleProfile) []schedule.BusSchedule {
	out := make([]schedule.BusSchedule, len(buses))
	copy(out, buses)

	active := make([]schedule.VehicleProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Status == "active" {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].SeatsMax != active[j].SeatsMax {
			return active[i].SeatsMax < active[j].SeatsMax
		}
		return active[i].ID < active[j].ID
	})

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra := minRequiredSeats(out[order[a]])
		rb := minRequiredSeats(out[order[b]])
		if ra != rb {
			return ra > rb
		}
		return out[order[a]].BusID < out[order[b]].BusID
	})

	used := make([]bool, len(active))
	for _, idx := range order {
		requirement := minRequiredSeats(out[idx])
		out[idx].MinRequiredSeats = requirement

		bestVehicle := -1
		bestScore := 0.0
		for pi, p := range active {
			if used[pi] {
				continue
			}
			score, ok := fitScore(p, requirement)
			if !ok {
				continue
			}
			if bestVehicle == -1 || score < bestScore {
				bestVehicle = pi
				bestScore = score
			}
		}

		if bestVehicle == -1 {
			continue
		}
		used[bestVehicle] = true
		v := active[bestVehicle]
		out[idx].AssignedVehicle = schedule.AssignedVehicle{
			ID:       v.ID,
			Code:     v.Code,
			Plate:    v.Plate,
			SeatsMin: v.SeatsMin,
			SeatsMax: v.SeatsMax,
		}
	}

	return out
}
