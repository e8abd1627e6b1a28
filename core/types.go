// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, EdgeKey, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultEdgeWeight is the weight given to inserted edges that do not carry one.
const DefaultEdgeWeight int64 = 1

// Vertex is a node of the graph. Data is an opaque label carried for identity.
type Vertex struct {
	ID   int64
	Data int
}

// Edge is a directed, weighted connection From -> To.
type Edge struct {
	From   int64
	To     int64
	Weight int64
}

// Key returns the endpoint pair of e.
func (e Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }

// EdgeKey identifies a directed edge by its endpoints only.
type EdgeKey struct {
	From int64
	To   int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory directed graph.
//
// muVert protects vertices; muEdgeAdj protects out, inDeg, outDeg and size.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and degree counters

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	vertices map[int64]*Vertex

	// out[from][to] holds the weights of every parallel from->to edge.
	out    map[int64]map[int64][]int64
	inDeg  map[int64]int
	outDeg map[int64]int
	size   int
}

// NewGraph creates an empty Graph with the given options.
// By default the graph rejects self-loops and parallel edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[int64]*Vertex),
		out:      make(map[int64]map[int64][]int64),
		inDeg:    make(map[int64]int),
		outDeg:   make(map[int64]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// options returns the GraphOption list reproducing g's configuration.
// Caller must hold at least muVert read lock or own g exclusively.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
