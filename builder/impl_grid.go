// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighbourhood lattice.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Nodes in row-major order labeled "r,c"; this fixed scheme overrides cfg.idFn
//     so coordinates stay readable.
//   • For each cell, link Right then Bottom where the neighbour exists.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

const gridLabelFmt = "%d,%d"

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(t *Topology, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := make([]*Vertex, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cells[r*cols+c] = t.add(fmt.Sprintf(gridLabelFmt, r, c))
			}
		}

		var (
			r, c int
			cur  *Vertex
			err  error
		)
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				cur = cells[r*cols+c]
				if c+1 < cols {
					if err = t.link(MethodGrid, cur, cells[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = t.link(MethodGrid, cur, cells[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
