// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// impl_complete.go — Complete(n): every node adjacent to every other.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Links each unordered pair {i,j}, i<j, once, in lexicographic order.
//
// Complexity: O(n) nodes + O(n²) links.

package builder

import "fmt"

// Complete returns a Constructor for K_n, the usual graph for tour problems.
func Complete(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		vs := t.addN(n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := t.link(MethodComplete, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
