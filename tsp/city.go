package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/aco/graph"
)

// City is a named point in the plane.
type City struct {
	Name string  `yaml:"name" json:"name"`
	X    float64 `yaml:"x" json:"x"`
	Y    float64 `yaml:"y" json:"y"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b City) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// stop is the graph node standing for cities[index] during one Solve call.
type stop struct {
	*graph.BasicNode
	index int
}

// Distances is a dense symmetric distance matrix over a city slice.
type Distances struct {
	n int
	w []float64
}

// NewDistances precomputes all pairwise distances.
//
// Errors: ErrInvalidCoordinate for a NaN or infinite coordinate.
//
// Complexity: O(n²) time and space.
func NewDistances(cities []City) (*Distances, error) {
	n := len(cities)
	for i, c := range cities {
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("NewDistances: city #%d (%q): %w", i, c.Name, ErrInvalidCoordinate)
		}
	}

	d := &Distances{n: n, w: make([]float64, n*n)}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			x = Distance(cities[i], cities[j])
			d.w[i*n+j] = x
			d.w[j*n+i] = x
		}
	}
	return d, nil
}

// N returns the number of cities.
func (d *Distances) N() int { return d.n }

// At returns the distance between cities i and j.
func (d *Distances) At(i, j int) float64 { return d.w[i*d.n+j] }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
