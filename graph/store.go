// SPDX-License-Identifier: MIT
// Package: aco/graph
//
// store.go — indexed node and edge collections for one colony run.
//
// Layout:
//   • nodes[id]          → Node           (unique keys)
//   • order              → ids in insertion order (random start, deterministic iteration)
//   • adj[id]            → frozen, de-duplicated adjacency snapshot
//   • edges[from][to]    → *Edge           (one entry per unordered pair)
//   • edgeList           → edges in creation order (deterministic evaporation)
//
// Policy:
//   • Construction validates everything once; traversal methods never re-validate.
//   • A reverse-direction edge is never created when the canonical one exists.

package graph

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/aco/pheromone"
)

// Store indexes the nodes and edges an ant colony walks on.
type Store struct {
	mu sync.RWMutex // guards the pheromone update cycle (see doc.go)

	order    []NodeID
	nodes    map[NodeID]Node
	adj      map[NodeID][]NodeID
	edges    map[NodeID]map[NodeID]*Edge
	edgeList []*Edge
}

// NewStore indexes nodes, freezes their adjacency and creates one Edge per adjacent
// pair, seeded from policy. Adjacency may be symmetric or one-sided; either way each
// unordered pair yields exactly one edge.
//
// Errors: ErrNilPolicy, ErrNilNode, ErrInvalidNodeID, ErrDuplicateNode,
// ErrNodeNotFound (dangling adjacency), ErrLoopNotAllowed.
//
// Complexity: O(V + A) where A is the total adjacency length.
func NewStore(nodes []Node, policy pheromone.Policy) (*Store, error) {
	if policy == nil {
		return nil, fmt.Errorf("NewStore: %w", ErrNilPolicy)
	}
	s, err := indexNodes(nodes)
	if err != nil {
		return nil, fmt.Errorf("NewStore: %w", err)
	}

	var (
		from, to NodeID
		e        *Edge
	)
	for _, from = range s.order {
		for _, to = range s.adj[from] {
			if _, ok := s.findEdgeLocked(from, to); ok {
				continue // canonical edge already created from the other side
			}
			if e, err = NewEdge(from, to, policy); err != nil {
				return nil, fmt.Errorf("NewStore: %w", err)
			}
			s.addEdgeLocked(e)
		}
	}

	return s, nil
}

// NewStoreWithEdges indexes nodes and adopts caller-built edges as-is (their
// pheromone levels and policies are kept). Node adjacency still drives candidate
// sets; edges only carry pheromone.
//
// Errors: those of NewStore plus ErrNilEdge, ErrDuplicateEdge, and ErrNodeNotFound
// for an edge endpoint outside the node set.
//
// Complexity: O(V + A + E).
func NewStoreWithEdges(nodes []Node, edges []*Edge) (*Store, error) {
	s, err := indexNodes(nodes)
	if err != nil {
		return nil, fmt.Errorf("NewStoreWithEdges: %w", err)
	}

	for i, e := range edges {
		if e == nil {
			return nil, fmt.Errorf("NewStoreWithEdges: edge #%d: %w", i, ErrNilEdge)
		}
		if _, ok := s.nodes[e.from]; !ok {
			return nil, fmt.Errorf("NewStoreWithEdges: edge %d–%d: from: %w", e.from, e.to, ErrNodeNotFound)
		}
		if _, ok := s.nodes[e.to]; !ok {
			return nil, fmt.Errorf("NewStoreWithEdges: edge %d–%d: to: %w", e.from, e.to, ErrNodeNotFound)
		}
		if _, ok := s.findEdgeLocked(e.from, e.to); ok {
			return nil, fmt.Errorf("NewStoreWithEdges: edge %d–%d: %w", e.from, e.to, ErrDuplicateEdge)
		}
		s.addEdgeLocked(e)
	}

	return s, nil
}

// indexNodes validates the node set and snapshots (and freezes) adjacency.
func indexNodes(nodes []Node) (*Store, error) {
	s := &Store{
		order: make([]NodeID, 0, len(nodes)),
		nodes: make(map[NodeID]Node, len(nodes)),
		adj:   make(map[NodeID][]NodeID, len(nodes)),
		edges: make(map[NodeID]map[NodeID]*Edge),
	}

	// Pass 1: identities.
	var id NodeID
	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("node #%d: %w", i, ErrNilNode)
		}
		id = n.ID()
		if id < 0 {
			return nil, fmt.Errorf("node #%d id=%d: %w", i, id, ErrInvalidNodeID)
		}
		if _, dup := s.nodes[id]; dup {
			return nil, fmt.Errorf("node id=%d: %w", id, ErrDuplicateNode)
		}
		s.nodes[id] = n
		s.order = append(s.order, id)
	}

	// Pass 2: adjacency (needs the full id set for dangling checks).
	for _, id = range s.order {
		n := s.nodes[id]
		raw := n.Adjacency()
		seen := make(map[NodeID]struct{}, len(raw))
		adj := make([]NodeID, 0, len(raw))
		for _, to := range raw {
			if to == id {
				return nil, fmt.Errorf("node %d: %w", id, ErrLoopNotAllowed)
			}
			if _, ok := s.nodes[to]; !ok {
				return nil, fmt.Errorf("node %d → %d: %w", id, to, ErrNodeNotFound)
			}
			if _, dup := seen[to]; dup {
				continue
			}
			seen[to] = struct{}{}
			adj = append(adj, to)
		}
		s.adj[id] = adj
		if f, ok := n.(freezer); ok {
			f.Freeze()
		}
	}

	return s, nil
}

// addEdgeLocked registers e under edges[from][to]. Caller holds mu or owns s.
func (s *Store) addEdgeLocked(e *Edge) {
	row, ok := s.edges[e.from]
	if !ok {
		row = make(map[NodeID]*Edge)
		s.edges[e.from] = row
	}
	row[e.to] = e
	s.edgeList = append(s.edgeList, e)
}

// findEdgeLocked is the undirected O(1) lookup. Caller holds mu (read or write).
func (s *Store) findEdgeLocked(a, b NodeID) (*Edge, bool) {
	if e, ok := s.edges[a][b]; ok {
		return e, true
	}
	if e, ok := s.edges[b][a]; ok {
		return e, true
	}
	return nil, false
}

// FindEdge returns the edge joining a and b in either direction, or (nil, false).
// Complexity: O(1).
func (s *Store) FindEdge(a, b NodeID) (*Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findEdgeLocked(a, b)
}

// Node returns the node with the given id. A negative id (RandomStart) selects a
// uniformly random node using rng; a nil rng falls back to NewRand(0).
//
// Errors: ErrNodeNotFound for an unknown id or a random pick on an empty store.
func (s *Store) Node(rng *rand.Rand, id NodeID) (Node, error) {
	if id < 0 {
		if len(s.order) == 0 {
			return nil, fmt.Errorf("Node(random): empty store: %w", ErrNodeNotFound)
		}
		if rng == nil {
			rng = NewRand(0)
		}
		id = s.order[rng.Intn(len(s.order))]
	}
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}
	return n, nil
}

// NotVisitedFrom returns the adjacency of id minus visited, preserving adjacency order.
// The order feeds the deterministic roulette walk, so it is part of observable behavior.
//
// Complexity: O(deg(id)).
func (s *Store) NotVisitedFrom(id NodeID, visited map[NodeID]struct{}) ([]NodeID, error) {
	adj, ok := s.adj[id]
	if !ok {
		return nil, fmt.Errorf("NotVisitedFrom(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]NodeID, 0, len(adj))
	for _, to := range adj {
		if _, seen := visited[to]; !seen {
			out = append(out, to)
		}
	}
	return out, nil
}

// Adjacency returns a copy of the frozen adjacency of id.
func (s *Store) Adjacency(id NodeID) ([]NodeID, error) {
	adj, ok := s.adj[id]
	if !ok {
		return nil, fmt.Errorf("Adjacency(%d): %w", id, ErrNodeNotFound)
	}
	return append([]NodeID(nil), adj...), nil
}

// Nodes returns all nodes in insertion order.
func (s *Store) Nodes() []Node {
	out := make([]Node, len(s.order))
	for i, id := range s.order {
		out[i] = s.nodes[id]
	}
	return out
}

// Edges returns all edges in creation order.
func (s *Store) Edges() []*Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*Edge(nil), s.edgeList...)
}

// NodeCount returns the number of nodes.
func (s *Store) NodeCount() int { return len(s.order) }

// EdgeCount returns the number of undirected edges.
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edgeList)
}

// Update runs one pheromone cycle for a finished walk: every edge joining consecutive
// ids is reinforced with objective, then every edge in the store evaporates once.
// Edges are resolved before anything mutates, so a walk with a missing edge leaves the
// store untouched and returns ErrEdgeNotFound.
//
// Complexity: O(len(ids) + E).
func (s *Store) Update(ids []NodeID, objective float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var path []*Edge
	if len(ids) > 1 {
		path = make([]*Edge, 0, len(ids)-1)
	}
	for i := 0; i+1 < len(ids); i++ {
		e, ok := s.findEdgeLocked(ids[i], ids[i+1])
		if !ok {
			return fmt.Errorf("Update: %d–%d: %w", ids[i], ids[i+1], ErrEdgeNotFound)
		}
		path = append(path, e)
	}

	for _, e := range path {
		e.Increase(objective)
	}
	for _, e := range s.edgeList {
		e.Evaporate()
	}

	return nil
}

// Evaporate evaporates every edge once, outside of an Update cycle.
func (s *Store) Evaporate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.edgeList {
		e.Evaporate()
	}
}
