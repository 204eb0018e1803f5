// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/aco/graph"
)

// BuilderOption customizes Build before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the label generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG via graph.NewRand (seed 0 ⇒ graph.DefaultSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = graph.NewRand(seed)
	}
}

// WithFirstID starts node ids at id instead of graph.DefaultFirstID. Panics on id < 0.
func WithFirstID(id graph.NodeID) BuilderOption {
	if id < 0 {
		panic("builder: WithFirstID(id<0)")
	}
	return func(c *builderConfig) {
		c.firstID = id
	}
}
