package graph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/aco/graph"
	"github.com/katalvlaran/aco/pheromone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdge_Validation(t *testing.T) {
	p := pheromone.MustNew(5, 0.1, pheromone.Linear())

	_, err := graph.NewEdge(1, 2, nil)
	assert.ErrorIs(t, err, graph.ErrNilPolicy)

	_, err = graph.NewEdge(3, 3, p)
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)

	_, err = graph.NewEdge(-1, 3, p)
	assert.ErrorIs(t, err, graph.ErrInvalidNodeID)

	e, err := graph.NewEdge(1, 2, p)
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Pheromone())
	assert.True(t, e.Connects(1, 2))
	assert.True(t, e.Connects(2, 1))
	assert.False(t, e.Connects(1, 3))
	assert.Same(t, p, e.Policy())
}

func TestEdge_InitialLevelIsFloored(t *testing.T) {
	e, err := graph.NewEdge(1, 2, pheromone.MustNew(0, 0.5, pheromone.Zero()))
	require.NoError(t, err)
	assert.Equal(t, graph.MinPheromone, e.Pheromone())
}

func TestEdge_EvaporateFloor(t *testing.T) {
	tests := []struct {
		name    string
		initial int64
		rate    float64
		steps   int
		want    int64
	}{
		{"rate one stays at floor", 1, 1, 5, 1},
		{"full rate drops to floor", 1000, 1, 1, 1},
		{"halving", 3, 0.5, 1, 2},
		{"halving twice", 3, 0.5, 2, 1},
		{"floor holds", 3, 0.5, 10, 1},
		{"zero rate keeps level", 7, 0, 10, 7},
		{"ten percent", 100, 0.1, 1, 90},
		{"floor of small product", 9, 0.1, 1, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := graph.NewEdge(1, 2, pheromone.MustNew(tc.initial, tc.rate, pheromone.Zero()))
			require.NoError(t, err)
			for i := 0; i < tc.steps; i++ {
				e.Evaporate()
				require.GreaterOrEqual(t, e.Pheromone(), graph.MinPheromone)
			}
			assert.Equal(t, tc.want, e.Pheromone())
		})
	}
}

func TestEdge_IncreaseSaturatesAndFloors(t *testing.T) {
	e, err := graph.NewEdge(1, 2, pheromone.MustNew(10, 0, pheromone.Linear()))
	require.NoError(t, err)

	e.Increase(5.7)
	assert.Equal(t, int64(15), e.Pheromone())

	e.Increase(-100)
	assert.Equal(t, graph.MinPheromone, e.Pheromone(), "negative deposit cannot cross the floor")

	e.SetPheromone(math.MaxInt64 - 1)
	e.Increase(10)
	assert.Equal(t, int64(math.MaxInt64), e.Pheromone())

	e.Evaporate() // rate 0
	assert.Equal(t, int64(math.MaxInt64), e.Pheromone())
}

func TestEdge_EvaporateFromMaxWithFullRate(t *testing.T) {
	e, err := graph.NewEdge(1, 2, pheromone.MustNew(1, 1, pheromone.Zero()))
	require.NoError(t, err)
	e.SetPheromone(math.MaxInt64)
	e.Evaporate()
	assert.Equal(t, graph.MinPheromone, e.Pheromone())
}

func TestEdge_SetPheromoneFloors(t *testing.T) {
	e, err := graph.NewEdge(1, 2, pheromone.MustNew(10, 0, pheromone.Zero()))
	require.NoError(t, err)
	e.SetPheromone(-5)
	assert.Equal(t, graph.MinPheromone, e.Pheromone())
	assert.Equal(t, "1–2(1)", e.String())
}
