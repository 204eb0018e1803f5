// SPDX-License-Identifier: MIT
// Package: aco/graph
//
// edge.go — pheromone-carrying undirected edge.
//
// Invariant: level ≥ MinPheromone at all times, so every edge keeps a strictly
// positive selection weight and no path becomes permanently unreachable.

package graph

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/aco/pheromone"
)

// MinPheromone is the floor no edge ever decays below.
const MinPheromone int64 = 1

// Edge links two nodes in both directions and owns the pheromone on that link.
// All methods are safe for concurrent use; writers are mutually exclusive.
type Edge struct {
	mu     sync.Mutex
	from   NodeID
	to     NodeID
	policy pheromone.Policy
	level  int64
}

// NewEdge creates an edge between from and to seeded with policy.InitialLevel()
// (floored at MinPheromone).
func NewEdge(from, to NodeID, policy pheromone.Policy) (*Edge, error) {
	if policy == nil {
		return nil, fmt.Errorf("NewEdge(%d,%d): %w", from, to, ErrNilPolicy)
	}
	if from == to {
		return nil, fmt.Errorf("NewEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("NewEdge(%d,%d): %w", from, to, ErrInvalidNodeID)
	}

	return &Edge{from: from, to: to, policy: policy, level: floor(policy.InitialLevel())}, nil
}

// From returns the endpoint the edge was created from.
func (e *Edge) From() NodeID { return e.from }

// To returns the endpoint the edge was created to.
func (e *Edge) To() NodeID { return e.to }

// Policy returns the shared pheromone policy.
func (e *Edge) Policy() pheromone.Policy { return e.policy }

// Connects reports whether the edge joins a and b, in either direction.
func (e *Edge) Connects(a, b NodeID) bool {
	return (e.from == a && e.to == b) || (e.from == b && e.to == a)
}

// Pheromone returns the current level, never below MinPheromone.
func (e *Edge) Pheromone() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return floor(e.level)
}

// Increase deposits policy.Increase(objective). The sum saturates at MaxInt64;
// a negative deposit cannot push the level under MinPheromone.
func (e *Edge) Increase(objective float64) {
	delta := e.policy.Increase(objective)

	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case delta > 0 && e.level > math.MaxInt64-delta:
		e.level = math.MaxInt64
	case delta < 0 && e.level < math.MinInt64-delta:
		e.level = MinPheromone
	default:
		e.level = floor(e.level + delta)
	}
}

// Evaporate removes floor(level·rate), keeping at least MinPheromone.
func (e *Edge) Evaporate() {
	rate := e.policy.EvaporationRate()

	e.mu.Lock()
	defer e.mu.Unlock()

	decrease := math.Floor(float64(e.level) * rate)
	if decrease >= float64(e.level) {
		e.level = MinPheromone
		return
	}
	e.level = floor(e.level - int64(decrease))
}

// SetPheromone overrides the current level (floored at MinPheromone).
// Used for warm starts and fixtures; the engine itself only uses Increase/Evaporate.
func (e *Edge) SetPheromone(level int64) {
	e.mu.Lock()
	e.level = floor(level)
	e.mu.Unlock()
}

// String renders "from–to(level)".
func (e *Edge) String() string {
	return fmt.Sprintf("%d–%d(%d)", e.from, e.to, e.Pheromone())
}

// floor clamps v to MinPheromone.
func floor(v int64) int64 {
	if v < MinPheromone {
		return MinPheromone
	}
	return v
}
