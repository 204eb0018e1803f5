package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/aco/colony"
	"github.com/katalvlaran/aco/pheromone"
	"github.com/katalvlaran/aco/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_SquareFindsPerimeter(t *testing.T) {
	t.Parallel()

	res, err := tsp.Solve(context.Background(), square(), tsp.WithAnts(50), tsp.WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(res.Tour, 4, 0))
	assert.InDelta(t, 4.0, res.Length, 1e-9)
	assert.InDelta(t, 4.0, res.Baseline, 1e-9)
	assert.Equal(t, 50, res.Run.Ants)
	assert.Equal(t, 50, res.Run.Valid, "every walk on a complete graph visits every city")
}

func TestSolve_TwoOptReachesPolygon(t *testing.T) {
	t.Parallel()

	const n = 12
	res, err := tsp.Solve(context.Background(), circle(n),
		tsp.WithAnts(30), tsp.WithSeed(3), tsp.WithTwoOpt(0))
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(res.Tour, n, 0))
	assert.InDelta(t, polygonPerimeter(n), res.Length, 1e-9)
	assert.LessOrEqual(t, res.Length, res.ColonyLength+1e-12)
}

func TestSolve_NeverWorseThanRandomWalkBound(t *testing.T) {
	t.Parallel()

	const n = 9
	res, err := tsp.Solve(context.Background(), circle(n), tsp.WithAnts(300), tsp.WithSeed(11))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Length, polygonPerimeter(n)-1e-9)
	assert.Less(t, res.Length, float64(n)*2, "no tour on the unit circle is longer than n diameters")
}

func TestSolve_StartCity(t *testing.T) {
	t.Parallel()

	res, err := tsp.Solve(context.Background(), square(), tsp.WithAnts(10), tsp.WithStart(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Tour[0])
	assert.Equal(t, 2, res.Tour[len(res.Tour)-1])
	assert.Equal(t, "c", res.Names(square())[0])
}

func TestSolve_SeedDeterminism(t *testing.T) {
	t.Parallel()

	solve := func(workers int) []int {
		res, err := tsp.Solve(context.Background(), circle(10),
			tsp.WithAnts(40), tsp.WithSeed(5), tsp.WithWorkers(workers))
		require.NoError(t, err)
		return res.Tour
	}
	assert.Equal(t, solve(1), solve(1))
	assert.Equal(t, solve(3), solve(3))
}

func TestSolve_TwoCities(t *testing.T) {
	t.Parallel()

	res, err := tsp.Solve(context.Background(), []tsp.City{{X: 0, Y: 0}, {X: 3, Y: 4}}, tsp.WithAnts(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, res.Tour)
	assert.InDelta(t, 10.0, res.Length, 1e-12)
}

func TestSolve_CoincidentCities(t *testing.T) {
	t.Parallel()

	res, err := tsp.Solve(context.Background(), []tsp.City{{}, {}, {}}, tsp.WithAnts(3))
	require.NoError(t, err)
	assert.Zero(t, res.Length)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := tsp.Solve(ctx, square()[:1])
	assert.ErrorIs(t, err, tsp.ErrTooFewCities)

	_, err = tsp.Solve(ctx, []tsp.City{{X: math.NaN()}, {X: 1}})
	assert.ErrorIs(t, err, tsp.ErrInvalidCoordinate)

	_, err = tsp.Solve(ctx, square(), tsp.WithStart(4))
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	_, err = tsp.Solve(ctx, square(), tsp.WithPheromone(10, 1.5, 100))
	assert.ErrorIs(t, err, pheromone.ErrEvaporationRange)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = tsp.Solve(cancelled, square())
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { tsp.WithAnts(0) })
	assert.Panics(t, func() { tsp.WithStart(-1) })
	assert.Panics(t, func() { tsp.WithPolicy(nil) })
}

func TestSolve_CustomPolicyAndMetrics(t *testing.T) {
	t.Parallel()

	res, err := tsp.Solve(context.Background(), square(),
		tsp.WithAnts(20),
		tsp.WithPolicy(pheromone.MustNew(1, 0.5, pheromone.Scaled(40))),
	)
	require.NoError(t, err)
	assert.Greater(t, res.Run.BestObjective, 0.0)
	assert.InDelta(t, 1/res.ColonyLength, res.Run.BestObjective, 1e-12)
	assert.IsType(t, &tsp.Tour{}, res.Run.Best)
	assert.Implements(t, (*colony.Solution)(nil), res.Run.Best)
}
