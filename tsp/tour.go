// SPDX-License-Identifier: MIT
// Package: aco/tsp
//
// tour.go — the Tour solution and closed-tour utilities.
//
// Provided helpers:
//   - Tour: colony.Solution over stops; valid once every city is visited.
//   - TourLength: closed-cycle length of an index tour.
//   - ValidateTour: Hamiltonian cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts and ends at start.
//   - EqualToursModuloRotation: equality up to rotation and direction.
//   - reverseArcInPlace: segment reversal used by 2-opt.

package tsp

import (
	"math"

	"github.com/katalvlaran/aco/colony"
)

// Tour is one ant's walk over the cities.
type Tour struct {
	colony.Walk
	dist *Distances
}

// Ensure interface compliance at compile time.
var _ colony.Solution = (*Tour)(nil)

func newTour(dist *Distances) *Tour { return &Tour{dist: dist} }

// Valid reports whether every city has been visited.
func (t *Tour) Valid() bool { return t.Len() == t.dist.N() }

// Objective is 1/Length; a zero-length tour (all cities coincide) scores MaxFloat64.
func (t *Tour) Objective() float64 {
	l := t.Length()
	if l == 0 {
		return math.MaxFloat64
	}
	return 1 / l
}

// Order returns the visited city indices, without the closing index.
func (t *Tour) Order() []int {
	out := make([]int, t.Len())
	for i := range out {
		out[i] = t.At(i).(*stop).index
	}
	return out
}

// Length returns the closed-cycle length of the walk so far.
func (t *Tour) Length() float64 {
	order := t.Order()
	if len(order) < 2 {
		return 0
	}
	return TourLength(t.dist, append(order, order[0]))
}

// TourLength sums the legs of a closed index tour.
// Complexity: O(len(tour)).
func TourLength(d *Distances, tour []int) float64 {
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		sum += d.At(tour[i], tour[i+1])
	}
	return sum
}

// ValidateTour enforces
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each index in [0..n-1] appears exactly once in tour[0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// RotateTourToStart returns a closed copy of tour beginning and ending at start.
// tour may be closed (last == first) or open.
//
// Errors: ErrStartOutOfRange when start does not occur in tour.
// Complexity: O(n).
func RotateTourToStart(tour []int, start int) ([]int, error) {
	open := tour
	if len(open) > 1 && open[0] == open[len(open)-1] {
		open = open[:len(open)-1]
	}
	n := len(open)

	pivot := -1
	for i, v := range open {
		if v == start {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, ErrStartOutOfRange
	}

	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i] = open[(pivot+i)%n]
	}
	out[n] = start
	return out, nil
}

// EqualToursModuloRotation reports whether two closed tours describe the same
// cycle, in either direction.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	rb, err := RotateTourToStart(b, a[0])
	if err != nil {
		return false
	}

	forward, backward := true, true
	for i := 0; i <= n; i++ {
		if a[i] != rb[i] {
			forward = false
		}
		if a[i] != rb[n-i] {
			backward = false
		}
	}
	return forward || backward
}

// reverseArcInPlace reverses tour[i..k] inclusive.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
