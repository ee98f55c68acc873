package anneal

import "math"

// Schedule holds the simulated-annealing cooling parameters shared by LNS
// (§4.6) and the QUBO solver (§4.7): a starting temperature, a geometric
// cooling rate applied after every iteration, and a floor below which the
// temperature stops decreasing (keeps Accept from degenerating to pure
// hill-climbing on very long runs).
type Schedule struct {
	StartTemp   float64
	CoolingRate float64 // applied as T *= CoolingRate, so in (0, 1)
	MinTemp     float64
}

// DefaultSchedule returns conservative, broadly-applicable cooling
// parameters: start hot enough to accept most early moves, cool by 5%
// per iteration, and never drop below a temperature that still accepts
// a one-unit-worse move with ~37% probability.
func DefaultSchedule() Schedule {
	return Schedule{
		StartTemp:   100.0,
		CoolingRate: 0.95,
		MinTemp:     1.0,
	}
}

// Cool returns the next temperature after one iteration, floored at
// s.MinTemp.
//
// Complexity: O(1).
func (s Schedule) Cool(temp float64) float64 {
	next := temp * s.CoolingRate
	if next < s.MinTemp {
		return s.MinTemp
	}

	return next
}

// Accept implements the Metropolis acceptance criterion: always accept an
// improving move (delta <= 0); accept a non-improving move with
// probability exp(-delta/temp). delta is "new cost - old cost" in the
// minimization direction used throughout the core (lower score is
// better), matching spec §4.6 step 3.
//
// Complexity: O(1).
func Accept(delta, temp float64, rng interface{ Float64() float64 }) bool {
	if delta <= 0 {
		return true
	}
	if temp <= 0 {
		return false
	}
	p := math.Exp(-delta / temp)

	return rng.Float64() < p
}
