// SPDX-License-Identifier: MIT
// Package: aco/graph
//
// traverse.go — breadth-first reachability over the frozen adjacency.
//
// Ants move along each node's own adjacency list, so reachability here
// follows the same arcs: a one-sided adjacency is traversed one way only.
//
// Steps:
//  1. Mark start visited and enqueue it.
//  2. Dequeue in FIFO order, append to the result, enqueue unvisited
//     neighbours in adjacency order.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)

package graph

import "fmt"

// Reachable returns every node reachable from start in BFS order, start first.
//
// Errors: ErrNodeNotFound for an unknown start.
func (s *Store) Reachable(start NodeID) ([]NodeID, error) {
	if _, ok := s.adj[start]; !ok {
		return nil, fmt.Errorf("Reachable(%d): %w", start, ErrNodeNotFound)
	}

	visited := map[NodeID]struct{}{start: {}}
	order := make([]NodeID, 0, len(s.order))
	queue := []NodeID{start}
	var cur NodeID
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		order = append(order, cur)
		for _, next := range s.adj[cur] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return order, nil
}

// Spans reports whether every node of the store is reachable from start,
// the precondition for any walk from start to cover the whole graph.
func (s *Store) Spans(start NodeID) (bool, error) {
	order, err := s.Reachable(start)
	if err != nil {
		return false, err
	}
	return len(order) == len(s.order), nil
}
