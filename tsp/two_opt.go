// SPDX-License-Identifier: MIT
// Package: aco/tsp
//
// two_opt.go — deterministic first-improvement 2-opt on a closed tour.
//
// Move: reverse tour[i..k] (1 ≤ i < k ≤ n-1), replacing legs (a,b),(c,d) by (a,c),(b,d)
// with a=T[i-1], b=T[i], c=T[k], d=T[k+1].
//   Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d); accepted when Δ < −eps.
//
// Design:
//   - Fixed scan order, no RNG; the scan restarts after every accepted move.
//   - The start city (T[0] == T[n]) never moves.
//
// Complexity: O(n²) per pass, O(1) per accepted move.

package tsp

import "fmt"

// DefaultTwoOptEps is the improvement threshold used by Solve.
const DefaultTwoOptEps = 1e-9

// TwoOpt improves a closed tour until no 2-opt move shortens it by more than eps
// or maxIters moves were accepted (maxIters ≤ 0 means no limit). The input is
// not modified.
//
// Errors: ValidateTour errors for a malformed tour.
func TwoOpt(d *Distances, tour []int, eps float64, maxIters int) ([]int, float64, error) {
	n := d.N()
	if len(tour) == 0 {
		return nil, 0, fmt.Errorf("TwoOpt: empty tour: %w", ErrDimensionMismatch)
	}
	if err := ValidateTour(tour, n, tour[0]); err != nil {
		return nil, 0, fmt.Errorf("TwoOpt: %w", err)
	}
	if eps < 0 {
		eps = 0
	}

	cur := append([]int(nil), tour...)
	accepted := 0

	var (
		i, k       int
		a, b, c, e int
		delta      float64
		improved   = true
	)
	for improved {
		improved = false
	scan:
		for i = 1; i < n-1; i++ {
			a, b = cur[i-1], cur[i]
			for k = i + 1; k < n; k++ {
				c, e = cur[k], cur[k+1]
				delta = d.At(a, c) + d.At(b, e) - d.At(a, b) - d.At(c, e)
				if delta < -eps {
					reverseArcInPlace(cur, i, k)
					accepted++
					improved = true
					break scan
				}
			}
		}
		if maxIters > 0 && accepted >= maxIters {
			break
		}
	}

	return cur, TourLength(d, cur), nil
}
