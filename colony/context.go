// SPDX-License-Identifier: MIT
// Package: aco/colony
//
// context.go — validated run context: graph store, solution factory, RNG.
//
// Contract:
//   • NewContext validates the whole Config and reports all problems together.
//   • ReleaseAnt never mutates pheromone; UpdatePheromone is the only writer.
//   • One RNG per Context; parallel ants get derived streams (graph.DeriveRand).

package colony

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/aco/graph"
	"github.com/katalvlaran/aco/pheromone"
)

// Config describes the graph and the problem a Context is built from.
type Config struct {
	// Nodes is the node set; adjacency is frozen when the Context is built.
	Nodes []graph.Node

	// Policy seeds one edge per adjacent pair. Required unless Edges is set.
	Policy pheromone.Policy

	// Edges, when non-nil, replaces edge construction from adjacency.
	// The edges keep their own policies and current levels.
	Edges []*graph.Edge

	// NewSolution creates the Solution each ant fills in.
	NewSolution SolutionFactory

	// Seed for the run RNG; 0 means graph.DefaultSeed. Ignored when Rand is set.
	Seed int64

	// Rand overrides the seeded RNG. It must not be shared with other goroutines.
	Rand *rand.Rand
}

// Context owns everything an ant needs to walk: the store, the solution
// factory and the random source.
type Context struct {
	mu          sync.Mutex // guards rng
	rng         *rand.Rand
	store       *graph.Store
	newSolution SolutionFactory
}

// NewContext validates cfg and builds the graph store.
//
// Every missing piece is reported: the returned error is an errors.Join of
// ErrNoNodes, ErrNoEdges, ErrNoSolutionFactory and ErrNoPolicy as applicable.
// Store construction errors (graph.ErrDuplicateNode, graph.ErrNodeNotFound, ...)
// are returned wrapped once the Config itself is complete.
func NewContext(cfg Config) (*Context, error) {
	var errs []error
	if len(cfg.Nodes) == 0 {
		errs = append(errs, fmt.Errorf("NewContext: %w", ErrNoNodes))
	}
	if cfg.Edges == nil {
		if cfg.Policy == nil {
			errs = append(errs, fmt.Errorf("NewContext: %w", ErrNoPolicy))
		}
		if len(cfg.Nodes) > 0 && !anyAdjacency(cfg.Nodes) {
			errs = append(errs, fmt.Errorf("NewContext: nodes have no adjacency: %w", ErrNoEdges))
		}
	} else if len(cfg.Edges) == 0 {
		errs = append(errs, fmt.Errorf("NewContext: empty edge list: %w", ErrNoEdges))
	}
	if cfg.NewSolution == nil {
		errs = append(errs, fmt.Errorf("NewContext: %w", ErrNoSolutionFactory))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var (
		store *graph.Store
		err   error
	)
	if cfg.Edges != nil {
		store, err = graph.NewStoreWithEdges(cfg.Nodes, cfg.Edges)
	} else {
		store, err = graph.NewStore(cfg.Nodes, cfg.Policy)
	}
	if err != nil {
		return nil, fmt.Errorf("NewContext: %w", err)
	}
	if store.EdgeCount() == 0 {
		return nil, fmt.Errorf("NewContext: %w", ErrNoEdges)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = graph.NewRand(cfg.Seed)
	}

	return &Context{rng: rng, store: store, newSolution: cfg.NewSolution}, nil
}

// anyAdjacency reports whether at least one node (non-nil) lists a neighbour.
func anyAdjacency(nodes []graph.Node) bool {
	for _, n := range nodes {
		if n != nil && len(n.Adjacency()) > 0 {
			return true
		}
	}
	return false
}

// Store exposes the graph the context walks on.
func (c *Context) Store() *graph.Store { return c.store }

// ReleaseAnt runs one traversal from initial (graph.RandomStart for a random
// node) and returns the walk, valid or not. Pheromone is only read.
//
// Errors: ErrNilSolution, graph.ErrNodeNotFound for an unknown start, and any
// selection error other than an exhausted candidate set.
func (c *Context) ReleaseAnt(initial graph.NodeID) (Solution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.releaseAnt(c.rng, initial)
}

// deriveRand hands out an independent stream for a parallel ant.
func (c *Context) deriveRand(stream uint64) *rand.Rand {
	c.mu.Lock()
	defer c.mu.Unlock()

	return graph.DeriveRand(c.rng, stream)
}

func (c *Context) releaseAnt(rng *rand.Rand, initial graph.NodeID) (Solution, error) {
	s := c.newSolution()
	if s == nil {
		return nil, fmt.Errorf("ReleaseAnt: %w", ErrNilSolution)
	}

	current, err := c.store.Node(rng, initial)
	if err != nil {
		return nil, fmt.Errorf("ReleaseAnt: start: %w", err)
	}
	s.Extend(current)
	visited := map[graph.NodeID]struct{}{current.ID(): {}}

	var (
		candidates []graph.NodeID
		next       graph.NodeID
	)
	for {
		candidates, err = c.store.NotVisitedFrom(current.ID(), visited)
		if err != nil {
			return nil, fmt.Errorf("ReleaseAnt: %w", err)
		}
		if len(candidates) == 0 {
			return s, nil
		}

		next, err = c.store.SelectNext(rng, current.ID(), candidates)
		if err != nil {
			return nil, fmt.Errorf("ReleaseAnt: %w", err)
		}
		if current, err = c.store.Node(rng, next); err != nil {
			return nil, fmt.Errorf("ReleaseAnt: %w", err)
		}
		s.Extend(current)
		visited[next] = struct{}{}

		if s.Valid() {
			return s, nil
		}
	}
}

// UpdatePheromone reinforces the edges along s with its objective, then
// evaporates every edge once. A walk that crosses a missing edge leaves the
// store untouched and returns graph.ErrEdgeNotFound.
func (c *Context) UpdatePheromone(s Solution) error {
	if s == nil {
		return fmt.Errorf("UpdatePheromone: %w", ErrNilSolution)
	}
	return c.updatePheromone(s, s.Objective())
}

func (c *Context) updatePheromone(s Solution, objective float64) error {
	if err := c.store.Update(ids(s.Nodes()), objective); err != nil {
		return fmt.Errorf("UpdatePheromone: %w", err)
	}
	return nil
}
