// Package graph holds the data model an ant colony walks on: nodes with ordered
// adjacency, pheromone-carrying undirected edges, and the Store that indexes both
// and performs the weighted (roulette-wheel) next-node selection.
//
// Model:
//
//   - NodeID     — integer identity; negative values are reserved (RandomStart = -1
//     asks the Store for a uniformly random node).
//   - Node       — capability set {ID(), Adjacency()}; BasicNode is the embeddable default.
//   - Sequence   — explicit, atomic id allocator owned by whoever builds the graph.
//   - Edge       — one undirected link per unordered pair; owns its pheromone level,
//     never below MinPheromone.
//   - Store      — nodes[id] and edges[from][to] (O(1) lookups), frozen adjacency,
//     SelectNext, NotVisitedFrom, Update (reinforce path, then evaporate every edge),
//     Reachable/Spans (BFS along adjacency arcs).
//
// Selection (SelectNext):
//
//	total = Σ pheromone(current, c) over candidates c that have an edge
//	r     ~ U{0..total}
//	walk candidates in the given order: r -= pheromone; first r ≤ 0 wins
//
// Because every edge keeps at least MinPheromone, total ≥ |eligible| and the walk
// always terminates on an eligible candidate; ErrNextNodeNotFound therefore signals a
// candidate set with no matching edges at all (a construction bug, not bad luck).
//
// Concurrency:
//
//	Store.mu guards the update cycle: SelectNext/FindEdge take the read lock, Update and
//	Evaporate take the write lock, so a reinforcement+evaporation cycle is never observed
//	half-applied. Each Edge additionally serializes its own writers.
//
// Errors:
//
//	ErrNilNode, ErrInvalidNodeID, ErrDuplicateNode, ErrNodeNotFound, ErrLoopNotAllowed,
//	ErrNilPolicy, ErrNilEdge, ErrDuplicateEdge, ErrEdgeNotFound, ErrNoCandidates,
//	ErrNextNodeNotFound, ErrFrozen.
package graph
