package chainbuilder

import (
	"math"
	"sort"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

// logistic weights for the hand-rolled arc-ranking heuristic. These are
// fixed coefficients chosen to prefer short, same-school, same-type
// transitions — not a trained model (§9): there is no training data or
// learning loop anywhere in this package, only a scored warm-start hint
// that the exact solver is free to ignore.
const (
	rankBiasWeight        = 0.5
	rankTravelGapWeight   = -4.0
	rankSameSchoolWeight  = 1.5
	rankSameTypeWeight    = 0.75
	rankDurationRatioWeight = -0.5
)

// scoreArc computes the logistic ranking score for an arc, higher is
// more attractive. rankArcs uses it only to order the arc slice; it never
// relaxes or overrides the hard feasibility check already applied in
// buildArcs.
func scoreArc(arc Arc, from, to schedule.Job) float64 {
	travelGapRatio := 0.0
	if arc.BestGapMin > 0 {
		travelGapRatio = arc.TravelMinutes / float64(arc.BestGapMin)
	}

	sameSchool := 0.0
	if from.Route.SchoolID == to.Route.SchoolID {
		sameSchool = 1.0
	}

	sameType := 0.0
	if from.Route.Kind == to.Route.Kind {
		sameType = 1.0
	}

	durationRatio := 1.0
	if to.DurationMin > 0 {
		durationRatio = float64(from.DurationMin) / float64(to.DurationMin)
	}

	z := rankBiasWeight +
		rankTravelGapWeight*travelGapRatio +
		rankSameSchoolWeight*sameSchool +
		rankSameTypeWeight*sameType +
		rankDurationRatioWeight*durationRatio

	return sigmoid(z)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// rankArcs returns a copy of arcs with Score populated, sorted by
// descending score (the input slice is left untouched), used to order candidate edges fed to the solver
// warm-start when Options.UseMLRanking is set.
func rankArcs(arcs []Arc, jobs []schedule.Job) []Arc {
	scored := make([]Arc, len(arcs))
	copy(scored, arcs)

	for i := range scored {
		scored[i].Score = scoreArc(scored[i], jobs[scored[i].From], jobs[scored[i].To])
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	return scored
}
