// SPDX-License-Identifier: MIT
// Package: aco/tsp
//
// solve.go — TSP dispatcher on top of the colony engine.
//
// Pipeline:
//   1) Validate cities and options; precompute Distances.
//   2) Build one stop node per city on a complete graph.
//   3) Release the ants (colony.RunDetailed) from the start city.
//   4) Rotate the best walk to the start city and close it.
//   5) Optionally polish with TwoOpt.

package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aco/colony"
	"github.com/katalvlaran/aco/graph"
	"github.com/katalvlaran/aco/pheromone"
)

// MinCities is the smallest instance Solve accepts (one edge).
const MinCities = 2

// Result is the outcome of Solve.
type Result struct {
	// Tour is the closed tour over city indices, Tour[0] == Tour[n] == start.
	Tour []int
	// Length is the length of Tour.
	Length float64
	// ColonyLength is the length of the colony's best tour before 2-opt.
	ColonyLength float64
	// Baseline is the nearest-neighbour tour length from the same start.
	Baseline float64
	// Run holds the colony statistics.
	Run *colony.Result
}

// Names maps Tour to city names.
func (r *Result) Names(cities []City) []string {
	out := make([]string, len(r.Tour))
	for i, idx := range r.Tour {
		out[i] = cities[idx].Name
	}
	return out
}

// Solve searches for a short closed tour through all cities.
//
// Errors: ErrTooFewCities, ErrInvalidCoordinate, ErrStartOutOfRange,
// pheromone validation errors for WithPheromone, ctx cancellation and
// colony.ErrNoSolutionFound.
func Solve(ctx context.Context, cities []City, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(cities)
	if n < MinCities {
		return nil, fmt.Errorf("Solve: n=%d < min=%d: %w", n, MinCities, ErrTooFewCities)
	}
	if o.start >= n {
		return nil, fmt.Errorf("Solve: start=%d, n=%d: %w", o.start, n, ErrStartOutOfRange)
	}
	dist, err := NewDistances(cities)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	baseline := TourLength(dist, NearestNeighbour(dist, o.start))
	policy := o.policy
	if policy == nil {
		// With objective 1/L, Scaled(q) deposits q/L; q = deposit·baseline makes a
		// baseline-length tour deposit exactly `deposit`.
		q := o.deposit * baseline
		if baseline == 0 {
			q = o.deposit
		}
		if policy, err = pheromone.New(o.initial, o.rate, pheromone.Scaled(q)); err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
	}

	seq := graph.NewSequence(0)
	stops := make([]*stop, n)
	nodes := make([]graph.Node, n)
	for i := range cities {
		stops[i] = &stop{BasicNode: graph.NewBasicNode(seq), index: i}
		nodes[i] = stops[i]
	}
	if err = graph.CompleteAdjacency(stops); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	cctx, err := colony.NewContext(colony.Config{
		Nodes:       nodes,
		Policy:      policy,
		NewSolution: func() colony.Solution { return newTour(dist) },
		Seed:        o.seed,
	})
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	c, err := colony.New(cctx, o.ants, o.colony...)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	run, err := c.RunDetailed(ctx, stops[o.start].ID())
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	best := run.Best.(*Tour)
	tour, err := RotateTourToStart(best.Order(), o.start)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	res := &Result{
		Tour:         tour,
		Length:       TourLength(dist, tour),
		ColonyLength: TourLength(dist, tour),
		Baseline:     baseline,
		Run:          run,
	}

	if o.twoOpt && n > 3 {
		if res.Tour, res.Length, err = TwoOpt(dist, tour, DefaultTwoOptEps, o.maxMoves); err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
	}

	return res, nil
}

// NearestNeighbour returns the closed greedy tour from start: always move to
// the closest unvisited city, lowest index on ties.
//
// Complexity: O(n²).
func NearestNeighbour(d *Distances, start int) []int {
	n := d.N()
	visited := make([]bool, n)
	tour := make([]int, 0, n+1)
	cur := start
	visited[cur] = true
	tour = append(tour, cur)

	for len(tour) < n {
		next := -1
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if next < 0 || d.At(cur, j) < d.At(cur, next) {
				next = j
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}
	return append(tour, start)
}
