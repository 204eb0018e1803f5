// SPDX-License-Identifier: MIT
// Package: aco/graph
//
// select.go — roulette-wheel next-node selection.

package graph

import (
	"fmt"
	"math"
	"math/rand"
)

// SelectNext picks the next node from candidates with probability proportional to
// the pheromone on the edge (current, candidate). Candidates without an edge are
// excluded. Candidates are walked in the given order, which makes the outcome a pure
// function of (rng state, candidate order, pheromone levels).
//
// Steps:
//  1. weights[i] = pheromone(current, candidates[i]) for candidates with an edge.
//  2. total = Σ weights (saturating).
//  3. r ~ U{0..total}.
//  4. r -= weights[i] in order; the first i with r ≤ 0 wins.
//
// Errors:
//   - ErrNoCandidates      — candidates is empty.
//   - ErrNextNodeNotFound  — no candidate has an edge from current.
//
// Complexity: O(len(candidates)).
func (s *Store) SelectNext(rng *rand.Rand, current NodeID, candidates []NodeID) (NodeID, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("SelectNext(%d): %w", current, ErrNoCandidates)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		ids     = make([]NodeID, 0, len(candidates))
		weights = make([]int64, 0, len(candidates))
		total   int64
		w       int64
	)
	for _, c := range candidates {
		e, ok := s.findEdgeLocked(current, c)
		if !ok {
			continue
		}
		w = e.Pheromone()
		ids = append(ids, c)
		weights = append(weights, w)
		if total > math.MaxInt64-w {
			total = math.MaxInt64
		} else {
			total += w
		}
	}

	var r int64
	if total == math.MaxInt64 {
		r = rng.Int63() // U{0..MaxInt64-1}; the top value is unreachable but harmless
	} else {
		r = rng.Int63n(total + 1)
	}

	for i, id := range ids {
		r -= weights[i]
		if r <= 0 {
			return id, nil
		}
	}

	return 0, fmt.Errorf("SelectNext(%d): %d candidates, %d with edges: %w",
		current, len(candidates), len(ids), ErrNextNodeNotFound)
}
