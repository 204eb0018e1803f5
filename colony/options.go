// SPDX-License-Identifier: MIT
// Package: aco/colony
//
// options.go — functional options for Colony.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Run itself never panics.

package colony

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option customizes a Colony.
type Option func(*Colony)

// WithLogger routes run logs to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("colony: WithLogger(nil)")
	}
	return func(c *Colony) {
		c.logger = logger
	}
}

// WithTracer sets the tracer used for the colony.run span. Panics on nil.
func WithTracer(tracer trace.Tracer) Option {
	if tracer == nil {
		panic("colony: WithTracer(nil)")
	}
	return func(c *Colony) {
		c.tracer = tracer
	}
}

// WithMetrics reports run counters to m (see NewMetrics). Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("colony: WithMetrics(nil)")
	}
	return func(c *Colony) {
		c.metrics = m
	}
}

// WithWorkers releases ants in generations of n concurrent walks. Walks of one
// generation see the same pheromone; their updates are applied in ant order.
// n == 1 is the sequential default. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("colony: WithWorkers(n<1)")
	}
	return func(c *Colony) {
		c.workers = n
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
