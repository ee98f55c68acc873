package qmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinx-svg/bus-route-optimizer-sub000/internal/qmatrix"
)

func TestDense_SetAt(t *testing.T) {
	m, err := qmatrix.NewDense(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 5.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.5, v)
}

func TestDense_AddAt_Accumulates(t *testing.T) {
	m, err := qmatrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.AddAt(0, 0, 1.0))
	require.NoError(t, m.AddAt(0, 0, 2.5))
	v, _ := m.At(0, 0)
	assert.Equal(t, 3.5, v)
}

func TestDense_OutOfBounds(t *testing.T) {
	m, err := qmatrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(5, 0)
	assert.ErrorIs(t, err, qmatrix.ErrIndexOutOfBounds)
	assert.ErrorIs(t, m.Set(-1, 0, 1), qmatrix.ErrIndexOutOfBounds)
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := qmatrix.NewDense(0, 3)
	assert.ErrorIs(t, err, qmatrix.ErrInvalidDimensions)
}
