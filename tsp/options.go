// SPDX-License-Identifier: MIT
// Package: aco/tsp
//
// options.go — functional options for Solve.
//
// Defaults:
//   • ants        = DefaultAnts
//   • workers     = 1 (sequential colony)
//   • seed        = 0 (graph.DefaultSeed)
//   • start       = city 0
//   • policy      = initial DefaultInitialPheromone, rate DefaultEvaporation,
//                   deposit Scaled(DefaultDeposit · nearest-neighbour length)
//   • 2-opt       = off

package tsp

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/aco/colony"
	"github.com/katalvlaran/aco/pheromone"
)

const (
	// DefaultAnts is the number of ants released when WithAnts is not given.
	DefaultAnts = 200
	// DefaultInitialPheromone seeds every edge.
	DefaultInitialPheromone int64 = 10
	// DefaultEvaporation is the per-cycle evaporation rate.
	DefaultEvaporation = 0.1
	// DefaultDeposit is the pheromone a tour as long as the nearest-neighbour
	// tour deposits on each of its edges.
	DefaultDeposit = 100.0
)

// Option customizes Solve.
type Option func(*options)

type options struct {
	ants     int
	seed     int64
	start    int
	initial  int64
	rate     float64
	deposit  float64
	policy   pheromone.Policy
	twoOpt   bool
	maxMoves int
	colony   []colony.Option
}

func defaultOptions() options {
	return options{
		ants:    DefaultAnts,
		initial: DefaultInitialPheromone,
		rate:    DefaultEvaporation,
		deposit: DefaultDeposit,
	}
}

// WithAnts sets the number of ants. Panics on n < 1.
func WithAnts(n int) Option {
	if n < 1 {
		panic("tsp: WithAnts(n<1)")
	}
	return func(o *options) { o.ants = n }
}

// WithSeed seeds the colony RNG.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithStart fixes the start city index for every ant and for the returned tour.
// Panics on i < 0; an index past the last city fails in Solve.
func WithStart(i int) Option {
	if i < 0 {
		panic("tsp: WithStart(i<0)")
	}
	return func(o *options) { o.start = i }
}

// WithPheromone tunes the default policy: initial level, evaporation rate and
// the deposit of a nearest-neighbour-length tour. Values are validated in Solve.
func WithPheromone(initial int64, rate, deposit float64) Option {
	return func(o *options) {
		o.initial, o.rate, o.deposit = initial, rate, deposit
	}
}

// WithPolicy replaces the default policy entirely. Panics on nil.
func WithPolicy(p pheromone.Policy) Option {
	if p == nil {
		panic("tsp: WithPolicy(nil)")
	}
	return func(o *options) { o.policy = p }
}

// WithTwoOpt polishes the colony's best tour with 2-opt. maxMoves ≤ 0 means
// run to a local optimum.
func WithTwoOpt(maxMoves int) Option {
	return func(o *options) { o.twoOpt, o.maxMoves = true, maxMoves }
}

// WithWorkers runs ants in generations of n goroutines (colony.WithWorkers).
func WithWorkers(n int) Option {
	opt := colony.WithWorkers(n)
	return func(o *options) { o.colony = append(o.colony, opt) }
}

// WithLogger forwards run logs (colony.WithLogger).
func WithLogger(l *slog.Logger) Option {
	opt := colony.WithLogger(l)
	return func(o *options) { o.colony = append(o.colony, opt) }
}

// WithMetrics forwards colony metrics (colony.WithMetrics).
func WithMetrics(m *colony.Metrics) Option {
	opt := colony.WithMetrics(m)
	return func(o *options) { o.colony = append(o.colony, opt) }
}

// WithTracer forwards the tracer (colony.WithTracer).
func WithTracer(t trace.Tracer) Option {
	opt := colony.WithTracer(t)
	return func(o *options) { o.colony = append(o.colony, opt) }
}
