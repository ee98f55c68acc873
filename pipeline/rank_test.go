package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odinx-svg/bus-route-optimizer-sub000/schedule"
)

func TestCompareCandidates_ViabilityDominates(t *testing.T) {
	split := candidate{metrics: schedule.Metrics{SplitCount: 1, BestBuses: 3}}
	clean := candidate{metrics: schedule.Metrics{SplitCount: 0, BestBuses: 10}}

	assert.Negative(t, compareCandidates(clean, split))
	assert.Positive(t, compareCandidates(split, clean))
}

func TestCompareCandidates_FewerBusesWinsAmongViable(t *testing.T) {
	fewer := candidate{metrics: schedule.Metrics{BestBuses: 3}}
	more := candidate{metrics: schedule.Metrics{BestBuses: 5}}

	assert.Negative(t, compareCandidates(fewer, more))
}

func TestCompareCandidates_TieBreaksOnDeadheadThenEfficiency(t *testing.T) {
	lowerDeadhead := candidate{metrics: schedule.Metrics{BestBuses: 3, AvgDeadhead: 5.0, AvgEfficiency: 0.5}}
	higherDeadhead := candidate{metrics: schedule.Metrics{BestBuses: 3, AvgDeadhead: 8.0, AvgEfficiency: 0.9}}

	assert.Negative(t, compareCandidates(lowerDeadhead, higherDeadhead))

	tiedDeadhead1 := candidate{metrics: schedule.Metrics{BestBuses: 3, AvgDeadhead: 5.0, AvgEfficiency: 0.9}}
	tiedDeadhead2 := candidate{metrics: schedule.Metrics{BestBuses: 3, AvgDeadhead: 5.0, AvgEfficiency: 0.5}}

	assert.Negative(t, compareCandidates(tiedDeadhead1, tiedDeadhead2))
}

func TestSelectBest_PicksLowestRanked(t *testing.T) {
	candidates := []candidate{
		{label: "baseline", metrics: schedule.Metrics{BestBuses: 5}},
		{label: "iter_1", metrics: schedule.Metrics{BestBuses: 3}},
		{label: "iter_2", metrics: schedule.Metrics{BestBuses: 4}},
	}

	best, risky := selectBest(candidates)
	assert.Equal(t, "iter_1", best.label)
	assert.False(t, risky)
}

func TestSelectBest_FlagsRiskWhenEveryCandidateSplit(t *testing.T) {
	candidates := []candidate{
		{label: "baseline", metrics: schedule.Metrics{SplitCount: 1, BestBuses: 5}},
		{label: "iter_1", metrics: schedule.Metrics{SplitCount: 2, BestBuses: 3}},
	}

	best, risky := selectBest(candidates)
	assert.Equal(t, "iter_1", best.label)
	assert.True(t, risky)
}

func TestFilterByLoadBalance_NoOpWhenBalanceLoadDisabled(t *testing.T) {
	candidates := []candidate{
		{label: "spread", metrics: schedule.Metrics{LoadSpreadRoutes: 10}},
		{label: "even", metrics: schedule.Metrics{LoadSpreadRoutes: 1}},
	}
	cfg := PipelineConfig{BalanceLoad: false, LoadBalanceHardSpreadLimit: 2}

	filtered := filterByLoadBalance(candidates, cfg)
	assert.Equal(t, candidates, filtered)
}

func TestFilterByLoadBalance_ExcludesCandidatesOverHardCap(t *testing.T) {
	candidates := []candidate{
		{label: "spread", metrics: schedule.Metrics{LoadSpreadRoutes: 10}},
		{label: "even", metrics: schedule.Metrics{LoadSpreadRoutes: 1}},
	}
	cfg := PipelineConfig{BalanceLoad: true, LoadBalanceHardSpreadLimit: 2}

	filtered := filterByLoadBalance(candidates, cfg)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "even", filtered[0].label)
}

func TestFilterByLoadBalance_HardCapNeverEmptiesThePool(t *testing.T) {
	candidates := []candidate{
		{label: "a", metrics: schedule.Metrics{LoadSpreadRoutes: 10}},
		{label: "b", metrics: schedule.Metrics{LoadSpreadRoutes: 8}},
	}
	cfg := PipelineConfig{BalanceLoad: true, LoadBalanceHardSpreadLimit: 2}

	filtered := filterByLoadBalance(candidates, cfg)
	assert.Len(t, filtered, 2)
}

func TestFilterByLoadBalance_PrefersTargetBandAmongSurvivors(t *testing.T) {
	candidates := []candidate{
		{label: "within-band", metrics: schedule.Metrics{LoadSpreadRoutes: 1}},
		{label: "outside-band", metrics: schedule.Metrics{LoadSpreadRoutes: 4}},
	}
	cfg := PipelineConfig{BalanceLoad: true, LoadBalanceHardSpreadLimit: 5, LoadBalanceTargetBand: 2}

	filtered := filterByLoadBalance(candidates, cfg)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "within-band", filtered[0].label)
}
