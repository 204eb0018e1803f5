// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// impl_wheel.go — Wheel(n): a rim C_{n-1} plus a hub joined to every rim node.
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Hub first (CenterLabel), then the rim ring, then the spokes in rim order.

package builder

import "fmt"

// Wheel returns a Constructor for the wheel W_n.
// Complexity: O(n) nodes + 2(n-1) links.
func Wheel(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		hub := t.add(CenterLabel)
		rim := t.addN(n-1, cfg)
		if err := ring(t, MethodWheel, rim); err != nil {
			return err
		}
		for _, v := range rim {
			if err := t.link(MethodWheel, hub, v); err != nil {
				return err
			}
		}
		return nil
	}
}
