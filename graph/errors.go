package graph

import "errors"

// Sentinel errors for graph construction and traversal.
var (
	// ErrNilNode indicates a nil Node in a node set.
	ErrNilNode = errors.New("graph: node is nil")

	// ErrInvalidNodeID indicates a negative node id on a concrete node.
	ErrInvalidNodeID = errors.New("graph: node id is negative")

	// ErrDuplicateNode indicates two nodes sharing one id.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrNodeNotFound indicates a reference to an id absent from the store.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrLoopNotAllowed indicates a node listing itself as adjacent, or a self-edge.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrNilPolicy indicates an edge or store built without a pheromone policy.
	ErrNilPolicy = errors.New("graph: pheromone policy is nil")

	// ErrNilEdge indicates a nil Edge in a caller-supplied edge list.
	ErrNilEdge = errors.New("graph: edge is nil")

	// ErrDuplicateEdge indicates a second edge for an unordered pair (either direction).
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrEdgeNotFound indicates two consecutive solution nodes with no edge between them.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNoCandidates indicates an empty candidate set passed to SelectNext.
	ErrNoCandidates = errors.New("graph: no candidate nodes")

	// ErrNextNodeNotFound indicates the roulette walk passed every candidate without
	// selecting one (no candidate had an edge from the current node).
	ErrNextNodeNotFound = errors.New("graph: next node not found")

	// ErrFrozen indicates an adjacency mutation after the node joined a Store.
	ErrFrozen = errors.New("graph: node adjacency is frozen")
)
