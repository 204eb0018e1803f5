package tsp_test

import (
	"testing"

	"github.com/katalvlaran/aco/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tour  []int
		n     int
		start int
		want  error
	}{
		{"valid", []int{0, 2, 1, 3, 0}, 4, 0, nil},
		{"valid other start", []int{2, 0, 1, 3, 2}, 4, 2, nil},
		{"open", []int{0, 1, 2, 3}, 4, 0, tsp.ErrDimensionMismatch},
		{"not closed", []int{0, 1, 2, 3, 1}, 4, 0, tsp.ErrDimensionMismatch},
		{"duplicate", []int{0, 1, 1, 3, 0}, 4, 0, tsp.ErrDimensionMismatch},
		{"out of range", []int{0, 1, 7, 3, 0}, 4, 0, tsp.ErrDimensionMismatch},
		{"start out of range", []int{0, 1, 2, 3, 0}, 4, 4, tsp.ErrStartOutOfRange},
		{"empty", nil, 0, 0, tsp.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tsp.ValidateTour(tc.tour, tc.n, tc.start)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRotateTourToStart(t *testing.T) {
	t.Parallel()

	got, err := tsp.RotateTourToStart([]int{3, 1, 0, 2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1, 0}, got)

	got, err = tsp.RotateTourToStart([]int{3, 1, 0, 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 3, 1}, got, "open input is closed")

	_, err = tsp.RotateTourToStart([]int{3, 1, 0, 2}, 9)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestEqualToursModuloRotation(t *testing.T) {
	t.Parallel()

	a := []int{0, 1, 2, 3, 0}
	assert.True(t, tsp.EqualToursModuloRotation(a, []int{2, 3, 0, 1, 2}))
	assert.True(t, tsp.EqualToursModuloRotation(a, []int{0, 3, 2, 1, 0}), "reverse direction")
	assert.False(t, tsp.EqualToursModuloRotation(a, []int{0, 2, 1, 3, 0}))
	assert.False(t, tsp.EqualToursModuloRotation(a, []int{0, 1, 2, 0}))
}

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	t.Parallel()

	d, err := tsp.NewDistances(square())
	require.NoError(t, err)

	crossed := []int{0, 2, 1, 3, 0}
	before := tsp.TourLength(d, crossed)
	got, length, err := tsp.TwoOpt(d, crossed, tsp.DefaultTwoOptEps, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, length, 1e-12)
	assert.Greater(t, before, length)
	assert.True(t, tsp.EqualToursModuloRotation(got, []int{0, 1, 2, 3, 0}))
	assert.Equal(t, []int{0, 2, 1, 3, 0}, crossed, "input is not modified")

	_, _, err = tsp.TwoOpt(d, []int{0, 1, 0}, 0, 0)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.TwoOpt(d, nil, 0, 0)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestNearestNeighbour(t *testing.T) {
	t.Parallel()

	d, err := tsp.NewDistances(square())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tsp.NearestNeighbour(d, 0))
	assert.Equal(t, []int{2, 1, 0, 3, 2}, tsp.NearestNeighbour(d, 2))
}

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, tsp.Distance(tsp.City{X: 0, Y: 0}, tsp.City{X: 3, Y: 4}), 1e-12)

	d, err := tsp.NewDistances(square())
	require.NoError(t, err)
	assert.Equal(t, 4, d.N())
	assert.Equal(t, d.At(0, 2), d.At(2, 0))
	assert.Zero(t, d.At(1, 1))
}
