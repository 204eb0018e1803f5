// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ MinRandomSparseNodes (else ErrTooFewVertices).
//   • MinProbability ≤ p ≤ MaxProbability (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is pure.
//   • One Bernoulli trial per unordered pair {i,j}, i<j, in lexicographic order,
//     so a fixed seed gives a fixed graph.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"
	"math"
)

// RandomSparse returns a Constructor sampling G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		vs := t.addN(n, cfg)
		var keep bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if stochastic {
					keep = cfg.rng.Float64() < p
				} else {
					keep = p == MaxProbability
				}
				if !keep {
					continue
				}
				if err := t.link(MethodRandomSparse, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
