package graph

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
)

// NodeID identifies a node inside one Store.
type NodeID int

// RandomStart is the sentinel start position: the Store picks a uniformly random node.
const RandomStart NodeID = -1

// String renders the id in decimal.
func (id NodeID) String() string { return strconv.Itoa(int(id)) }

// Node is the capability set the engine needs from a problem node.
type Node interface {
	// ID returns the node identity; it never changes.
	ID() NodeID
	// Adjacency returns the ids reachable next, in a stable order.
	Adjacency() []NodeID
}

// BasicNode is the embeddable default Node. Its adjacency is mutable until Freeze,
// which NewStore calls when the node joins a graph.
type BasicNode struct {
	mu     sync.RWMutex
	id     NodeID
	adj    []NodeID
	frozen bool
}

// Ensure interface compliance at compile time.
var _ Node = (*BasicNode)(nil)

// NewBasicNode allocates the next id from seq and records adj as the adjacency.
func NewBasicNode(seq *Sequence, adj ...NodeID) *BasicNode {
	return NewNodeWithID(seq.Next(), adj...)
}

// NewNodeWithID builds a node with an explicit id. Prefer NewBasicNode unless ids are
// dictated by input data.
func NewNodeWithID(id NodeID, adj ...NodeID) *BasicNode {
	return &BasicNode{id: id, adj: append([]NodeID(nil), adj...)}
}

// ID implements Node.
func (n *BasicNode) ID() NodeID { return n.id }

// Adjacency implements Node. The returned slice is a copy.
func (n *BasicNode) Adjacency() []NodeID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return append([]NodeID(nil), n.adj...)
}

// SetAdjacency replaces the adjacency list. It fails with ErrFrozen once the node
// has been frozen.
func (n *BasicNode) SetAdjacency(adj []NodeID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.frozen {
		return fmt.Errorf("SetAdjacency(%d): %w", n.id, ErrFrozen)
	}
	n.adj = append(n.adj[:0:0], adj...)
	return nil
}

// Freeze makes the adjacency read-only. Idempotent.
func (n *BasicNode) Freeze() {
	n.mu.Lock()
	n.frozen = true
	n.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (n *BasicNode) Frozen() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.frozen
}

// freezer is implemented by nodes whose adjacency can be locked for a run.
type freezer interface{ Freeze() }

// Sequence is an explicit node-id allocator. It replaces a process-wide counter:
// the graph-building step owns one, so id assignment is reproducible per build.
// Next is safe for concurrent use.
type Sequence struct {
	next atomic.Int64
}

// DefaultFirstID is the first id handed out by NewSequence(0).
const DefaultFirstID NodeID = 1

// NewSequence returns an allocator whose first id is start; start ≤ 0 means
// DefaultFirstID, keeping negative ids reserved for sentinels.
func NewSequence(start NodeID) *Sequence {
	if start <= 0 {
		start = DefaultFirstID
	}
	s := &Sequence{}
	s.next.Store(int64(start))
	return s
}

// Next returns the next id and advances the sequence.
func (s *Sequence) Next() NodeID {
	return NodeID(s.next.Add(1) - 1)
}

// Peek returns the id the next call to Next will hand out.
func (s *Sequence) Peek() NodeID {
	return NodeID(s.next.Load())
}
