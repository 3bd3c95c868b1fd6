// Package core declares NodeID, Arc, the Graph view, sentinel errors,
// and the Digraph constructor with its functional options.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates a NodeID outside [0, Order()).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrBadWeight indicates a non-unit weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NodeID identifies a node. IDs are dense: every ID handed out by a Digraph
// lies in [0, Order()) and doubles as an array index.
type NodeID int

// Arc is one outgoing adjacency entry: the neighbor reached and the edge
// weight. Unweighted graphs carry the unit weight 1.
type Arc struct {
	// To is the neighbor on the far end of the edge.
	To NodeID

	// Weight is the edge weight (1 for unweighted graphs).
	Weight float64
}

// Graph is the read-only view consumed by the centrality algorithms.
//
// Implementations must keep the view stable for the duration of a call:
// Order must not change and Adjacent/Incoming must reflect a fixed edge set.
// Returned slices are owned by the caller (fresh copies or otherwise safe to
// iterate without locks).
type Graph interface {
	// Order returns the number of nodes. Valid NodeIDs are [0, Order()).
	Order() int

	// Adjacent returns the outgoing arcs of id, in a deterministic order.
	// An id outside [0, Order()) yields nil.
	Adjacent(id NodeID) []Arc

	// Incoming returns the predecessors of id: every node with an edge into
	// id. Undirected implementations return the neighbor set.
	Incoming(id NodeID) []NodeID
}

// GraphOption configures a Digraph before creation.
type GraphOption func(g *Digraph)

// WithDirected sets edge directedness (true = directed, false = undirected).
// Undirected is the default; undirected edges appear in both endpoints'
// adjacency.
func WithDirected(directed bool) GraphOption {
	return func(g *Digraph) { g.directed = directed }
}

// WithWeighted allows non-unit edge weights.
func WithWeighted() GraphOption {
	return func(g *Digraph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Digraph) { g.allowLoops = true }
}

// Digraph is the core in-memory graph: dense node IDs, slice-backed
// adjacency, directed or undirected edges.
//
// mu guards all storage; see doc.go for the concurrency contract.
type Digraph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edges are one-way
	weighted   bool // allow non-unit weights
	allowLoops bool // allow self-loops

	// Storage: out[id] lists outgoing arcs, in[id] lists predecessor IDs.
	out  [][]Arc
	in   [][]NodeID
	size int64 // edge count
}

// NewDigraph creates an empty Digraph with the given options.
// By default, the graph is undirected, unweighted, with no self-loops.
// Complexity: O(1).
func NewDigraph(opts ...GraphOption) *Digraph {
	g := &Digraph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
