package graph

import "fmt"

// AdjacencySetter is a Node whose adjacency can be assigned before a run.
type AdjacencySetter interface {
	Node
	SetAdjacency(adj []NodeID) error
}

// CompleteAdjacency makes every node adjacent to every other node, in slice order.
// It is the usual setup for problems where any element may follow any other
// (tours, permutations, assignments).
//
// Complexity: O(n²).
func CompleteAdjacency[N AdjacencySetter](nodes []N) error {
	ids := make([]NodeID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}

	for i, n := range nodes {
		adj := make([]NodeID, 0, len(ids)-1)
		for j, id := range ids {
			if j == i {
				continue
			}
			adj = append(adj, id)
		}
		if err := n.SetAdjacency(adj); err != nil {
			return fmt.Errorf("CompleteAdjacency: %w", err)
		}
	}

	return nil
}

// Link makes a and b adjacent to each other, appending to their current lists.
func Link(a, b AdjacencySetter) error {
	if a.ID() == b.ID() {
		return fmt.Errorf("Link(%d,%d): %w", a.ID(), b.ID(), ErrLoopNotAllowed)
	}
	if err := a.SetAdjacency(append(a.Adjacency(), b.ID())); err != nil {
		return fmt.Errorf("Link(%d,%d): %w", a.ID(), b.ID(), err)
	}
	if err := b.SetAdjacency(append(b.Adjacency(), a.ID())); err != nil {
		return fmt.Errorf("Link(%d,%d): %w", a.ID(), b.ID(), err)
	}
	return nil
}
