package chainbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructChains_SingleChain(t *testing.T) {
	matched := map[int]int{1: 0, 2: 1}
	chains, err := reconstructChains(3, matched)
	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, []int{0, 1, 2}, chains[0])
}

func TestReconstructChains_MultipleHeads(t *testing.T) {
	matched := map[int]int{1: 0}
	chains, err := reconstructChains(3, matched)
	require.NoError(t, err)
	assert.Len(t, chains, 2)
}

func TestReconstructChains_NoMatches(t *testing.T) {
	chains, err := reconstructChains(2, map[int]int{})
	require.NoError(t, err)
	assert.Len(t, chains, 2)
	for _, c := range chains {
		assert.Len(t, c, 1)
	}
}
