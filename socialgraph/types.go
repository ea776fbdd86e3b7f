package socialgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrIO is returned when an edge list cannot be opened, read, or written.
	ErrIO = errors.New("socialgraph: edge list i/o failure")

	// ErrFormat is returned when the edge list is malformed.
	ErrFormat = errors.New("socialgraph: malformed edge list")

	// ErrNodeOutOfRange is returned when an edge endpoint lies outside [0,n).
	// Errors carrying it from Build also match ErrFormat.
	ErrNodeOutOfRange = errors.New("socialgraph: node id out of range")
)

// NodeID identifies a node by its zero-based index.
type NodeID int

// Graph is a directed adjacency-list graph with a fixed node count.
// The zero value and a nil *Graph both behave as an empty graph with no nodes.
type Graph struct {
	adj   [][]NodeID
	edges int
}

// FromAdjacency returns a Graph holding a deep copy of adj.
// Every id in every list must lie in [0, len(adj)), otherwise ErrNodeOutOfRange.
func FromAdjacency(adj [][]NodeID) (*Graph, error) {
	n := len(adj)
	g := &Graph{adj: make([][]NodeID, n)}
	for x, nbrs := range adj {
		for _, y := range nbrs {
			if y < 0 || int(y) >= n {
				return nil, fmt.Errorf("node %d lists neighbor %d, n=%d: %w", x, y, n, ErrNodeOutOfRange)
			}
		}
		g.adj[x] = append([]NodeID(nil), nbrs...)
		g.edges += len(nbrs)
	}
	return g, nil
}

// newGraph allocates n empty adjacency lists.
func newGraph(n int) *Graph {
	return &Graph{adj: make([][]NodeID, n)}
}

// addEdge appends y to x's list. Callers validate both ids.
func (g *Graph) addEdge(x, y NodeID) {
	g.adj[x] = append(g.adj[x], y)
	g.edges++
}

// Len returns the node count n.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.adj)
}

// EdgeCount returns the number of stored edges, duplicates and self-loops included.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return g.edges
}

// Valid reports whether id lies in [0, Len()).
func (g *Graph) Valid(id NodeID) bool {
	return id >= 0 && int(id) < g.Len()
}

// Degree returns the out-degree of id, or 0 if id is out of range.
func (g *Graph) Degree(id NodeID) int {
	if !g.Valid(id) {
		return 0
	}
	return len(g.adj[id])
}

// Neighbors returns the out-neighbors of id in edge-arrival order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	if !g.Valid(id) {
		return nil
	}
	return g.adj[id]
}

// HasEdge reports whether y appears in x's neighbor list.
func (g *Graph) HasEdge(x, y NodeID) bool {
	for _, v := range g.Neighbors(x) {
		if v == y {
			return true
		}
	}
	return false
}

// Adjacency returns a deep copy of the adjacency lists.
func (g *Graph) Adjacency() [][]NodeID {
	if g == nil {
		return [][]NodeID{}
	}
	out := make([][]NodeID, len(g.adj))
	for i, nbrs := range g.adj {
		out[i] = append([]NodeID{}, nbrs...)
	}
	return out
}
