// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// impl_path.go — Path(n): a chain 0–1–…–(n-1).
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Exactly n-1 links, emitted in index order.

package builder

import "fmt"

// Path returns a Constructor for the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		vs := t.addN(n, cfg)
		for i := 0; i+1 < n; i++ {
			if err := t.link(MethodPath, vs[i], vs[i+1]); err != nil {
				return err
			}
		}
		return nil
	}
}
