// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// impl_cycle.go — Cycle(n): a ring 0–1–…–(n-1)–0.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Links i–(i+1) for i in [0..n-2], then the closing (n-1)–0.

package builder

import "fmt"

// Cycle returns a Constructor for the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		return ring(t, MethodCycle, t.addN(n, cfg))
	}
}

// ring links vs in order and closes the loop.
func ring(t *Topology, method string, vs []*Vertex) error {
	for i := 0; i < len(vs); i++ {
		if err := t.link(method, vs[i], vs[(i+1)%len(vs)]); err != nil {
			return err
		}
	}
	return nil
}
