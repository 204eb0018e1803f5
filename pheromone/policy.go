// SPDX-License-Identifier: MIT
// Package: aco/pheromone
//
// policy.go — Policy contract, Params value object and standard increase functions.
//
// Contract:
//   • InitialLevel() ≥ 0 and EvaporationRate() ∈ [0,1] are validated once, in New.
//   • Increase must be pure: same objective ⇒ same amount. Edges apply it verbatim
//     (saturating, floored at 1), so magnitudes over many cycles are the caller's concern.

package pheromone

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for policy construction.
var (
	// ErrNegativeInitial indicates a negative initial pheromone level.
	ErrNegativeInitial = errors.New("pheromone: initial level is negative")

	// ErrEvaporationRange indicates an evaporation rate outside [0,1].
	ErrEvaporationRange = errors.New("pheromone: evaporation rate out of [0,1]")

	// ErrNilIncrease indicates a missing increase function.
	ErrNilIncrease = errors.New("pheromone: increase function is nil")
)

// Policy is the capability set an edge needs to apply pheromone dynamics.
type Policy interface {
	// InitialLevel is the pheromone assigned to a freshly built edge.
	InitialLevel() int64
	// EvaporationRate is the fraction of pheromone removed per evaporation, in [0,1].
	EvaporationRate() float64
	// Increase maps an achieved objective value to a pheromone deposit.
	Increase(objective float64) int64
}

// IncreaseFn maps an objective value to a pheromone deposit.
type IncreaseFn func(objective float64) int64

// Params is an immutable Policy built from two parameters and an IncreaseFn.
type Params struct {
	initial  int64
	rate     float64
	increase IncreaseFn
}

// Ensure interface compliance at compile time.
var _ Policy = (*Params)(nil)

// New validates the parameters and returns a Params policy.
// All violations are reported together (errors.Join), each wrapping its sentinel.
// Complexity: O(1).
func New(initial int64, rate float64, fn IncreaseFn) (*Params, error) {
	var errs []error
	if initial < 0 {
		errs = append(errs, fmt.Errorf("New: initial=%d: %w", initial, ErrNegativeInitial))
	}
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		errs = append(errs, fmt.Errorf("New: rate=%g: %w", rate, ErrEvaporationRange))
	}
	if fn == nil {
		errs = append(errs, fmt.Errorf("New: %w", ErrNilIncrease))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Params{initial: initial, rate: rate, increase: fn}, nil
}

// MustNew is New for static configuration; it panics on invalid parameters.
func MustNew(initial int64, rate float64, fn IncreaseFn) *Params {
	p, err := New(initial, rate, fn)
	if err != nil {
		panic(err)
	}
	return p
}

// InitialLevel implements Policy.
func (p *Params) InitialLevel() int64 { return p.initial }

// EvaporationRate implements Policy.
func (p *Params) EvaporationRate() float64 { return p.rate }

// Increase implements Policy by delegating to the configured IncreaseFn.
func (p *Params) Increase(objective float64) int64 { return p.increase(objective) }

// String renders the two numeric parameters for logs.
func (p *Params) String() string {
	return fmt.Sprintf("pheromone{initial=%d rate=%g}", p.initial, p.rate)
}

// Zero never deposits pheromone; only evaporation shapes the trails.
func Zero() IncreaseFn {
	return func(float64) int64 { return 0 }
}

// Constant deposits k on every reinforced edge regardless of the objective.
func Constant(k int64) IncreaseFn {
	return func(float64) int64 { return k }
}

// Linear deposits floor(objective), the "deposit what you achieved" rule.
func Linear() IncreaseFn {
	return Scaled(1)
}

// Scaled deposits floor(q·objective), clamped to the int64 range.
// With an objective of 1/length this is the Ant-System Q/L rule.
func Scaled(q float64) IncreaseFn {
	return func(objective float64) int64 {
		v := q * objective
		switch {
		case math.IsNaN(v):
			return 0
		case v >= math.MaxInt64:
			return math.MaxInt64
		case v <= math.MinInt64:
			return math.MinInt64
		}
		return int64(math.Floor(v))
	}
}
