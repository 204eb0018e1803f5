package tsp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aco/tsp"
)

// square is the unit square; its optimal tour has length 4.
func square() []tsp.City {
	return []tsp.City{
		{Name: "a", X: 0, Y: 0},
		{Name: "b", X: 1, Y: 0},
		{Name: "c", X: 1, Y: 1},
		{Name: "d", X: 0, Y: 1},
	}
}

// circle places n cities on a unit circle in a shuffled index order, so the
// optimal tour is the polygon and index order is not a hint.
func circle(n int) []tsp.City {
	out := make([]tsp.City, n)
	for i := 0; i < n; i++ {
		k := (i * 7) % n // 7 is coprime with every size used here
		th := 2 * math.Pi * float64(k) / float64(n)
		out[i] = tsp.City{Name: fmt.Sprintf("c%d", i), X: math.Cos(th), Y: math.Sin(th)}
	}
	return out
}

// polygonPerimeter is the optimal tour length on circle(n).
func polygonPerimeter(n int) float64 {
	return float64(n) * 2 * math.Sin(math.Pi/float64(n))
}
