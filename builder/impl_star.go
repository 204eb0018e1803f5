// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// impl_star.go — Star(n): a hub labeled CenterLabel with n-1 leaves.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • The hub is created first; leaves are labeled cfg.idFn(0..n-2).

package builder

import "fmt"

// Star returns a Constructor for the star S_{n-1}.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := t.add(CenterLabel)
		for _, leaf := range t.addN(n-1, cfg) {
			if err := t.link(MethodStar, hub, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
