// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn  ("0","1","2",... per constructor)
//   • rng     = nil          (pure unless seeded)
//   • firstID = graph.DefaultFirstID
//
// Options apply in order; later ones override earlier ones.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/aco/graph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Label strategy: index within a constructor → label.
	idFn IDFn
	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
	// First node id handed out by the topology's Sequence.
	firstID graph.NodeID
}

// newBuilderConfig applies opts over the deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		firstID: graph.DefaultFirstID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
