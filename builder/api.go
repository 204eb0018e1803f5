// SPDX-License-Identifier: MIT
// Package: aco/builder
//
// api.go — public entry point and the Topology produced by constructors.
//
// Contract:
//   • One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order
//     against one Topology sharing one graph.Sequence.
//   • Constructors add fresh nodes only; composing two shapes yields two
//     disconnected components unless a constructor links across them.
//   • Same inputs/options/seed and constructor order ⇒ identical output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/aco/graph"
)

// Constructor adds nodes and adjacency to t using the resolved configuration.
// Constructors validate parameters before adding anything and return sentinel
// errors; they never panic.
type Constructor func(t *Topology, cfg builderConfig) error

// Vertex is a graph node carrying a human-readable label.
type Vertex struct {
	*graph.BasicNode
	label string
}

// Label returns the label assigned by the IDFn in effect at build time.
func (v *Vertex) Label() string { return v.label }

// Topology is the ordered node set built by constructors.
type Topology struct {
	seq      *graph.Sequence
	vertices []*Vertex
	edges    int
}

// Build resolves opts and applies every constructor in order.
//
// Errors: constructor errors wrapped as "Build: %w"; a nil constructor yields
// ErrConstructFailed.
//
// Complexity: Σ cost of the constructors.
func Build(opts []BuilderOption, cons ...Constructor) (*Topology, error) {
	cfg := newBuilderConfig(opts...)
	t := &Topology{seq: graph.NewSequence(cfg.firstID)}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return t, nil
}

// Vertices returns the vertices in creation order.
func (t *Topology) Vertices() []*Vertex {
	return append([]*Vertex(nil), t.vertices...)
}

// Nodes returns the vertices as graph.Node, ready for colony.Config.
func (t *Topology) Nodes() []graph.Node {
	out := make([]graph.Node, len(t.vertices))
	for i, v := range t.vertices {
		out[i] = v
	}
	return out
}

// Len returns the number of vertices.
func (t *Topology) Len() int { return len(t.vertices) }

// EdgeCount returns the number of undirected links made by constructors.
func (t *Topology) EdgeCount() int { return t.edges }

// Labels maps node ids to labels.
func (t *Topology) Labels() map[graph.NodeID]string {
	out := make(map[graph.NodeID]string, len(t.vertices))
	for _, v := range t.vertices {
		out[v.ID()] = v.label
	}
	return out
}

// add appends a fresh vertex labeled label.
func (t *Topology) add(label string) *Vertex {
	v := &Vertex{BasicNode: graph.NewBasicNode(t.seq), label: label}
	t.vertices = append(t.vertices, v)
	return v
}

// addN appends n vertices labeled by cfg.idFn(0..n-1).
func (t *Topology) addN(n int, cfg builderConfig) []*Vertex {
	out := make([]*Vertex, n)
	for i := 0; i < n; i++ {
		out[i] = t.add(cfg.idFn(i))
	}
	return out
}

// link makes a and b adjacent in both directions.
func (t *Topology) link(method string, a, b *Vertex) error {
	if err := graph.Link(a, b); err != nil {
		return fmt.Errorf("%s: link %s–%s: %w: %w", method, a.label, b.label, ErrConstructFailed, err)
	}
	t.edges++
	return nil
}
