package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/anneal"
)

func TestRNGFromSeed_Deterministic(t *testing.T) {
	a := anneal.RNGFromSeed(42)
	b := anneal.RNGFromSeed(42)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestRNGFromSeed_ZeroUsesDefault(t *testing.T) {
	a := anneal.RNGFromSeed(0)
	b := anneal.RNGFromSeed(0)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveRNG_IndependentStreams(t *testing.T) {
	a := anneal.DeriveRNG(7, 1)
	b := anneal.DeriveRNG(7, 2)
	assert.NotEqual(t, a.Int63(), b.Int63())
}

func TestSchedule_Cool_FloorsAtMinTemp(t *testing.T) {
	s := anneal.Schedule{StartTemp: 1, CoolingRate: 0.1, MinTemp: 0.5}
	got := s.Cool(1.0)
	assert.Equal(t, 0.5, got)
}

func TestAccept_AlwaysAcceptsImprovement(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	assert.True(t, anneal.Accept(-5, 10, r))
	assert.True(t, anneal.Accept(0, 10, r))
}

func TestAccept_RejectsAtZeroTemp(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	assert.False(t, anneal.Accept(5, 0, r))
}

func TestAccept_ProbabilisticallyAcceptsWorse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	accepted := 0
	for i := 0; i < 1000; i++ {
		if anneal.Accept(1, 5, r) {
			accepted++
		}
	}
	// exp(-1/5) ~= 0.819; expect a healthy fraction of acceptances.
	assert.Greater(t, accepted, 600)
	assert.Less(t, accepted, 950)
}
