// This file declares Edge, Graph, sentinel errors, and the New constructor,
// together with the read-side accessors the engines rely on.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates a vertex index outside [0, VertexCount).
	ErrInvalidVertex = errors.New("core: vertex index out of range")

	// ErrNilGraph indicates a nil *Graph was passed where one is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is one directed, weighted connection between two vertices.
//
// From and To are dense vertex indices in [0, VertexCount). Weight is signed:
// negative weights are legal at the store level — whether they are acceptable
// is each engine's contract (Dijkstra forbids them, Bellman-Ford and
// Floyd-Warshall do not).
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the signed cost of traversing this edge.
	Weight int64
}

// Graph is a directed, edge-weighted multigraph over n dense vertices.
//
// Edges are stored once in an append-only arena; out[v] holds the indices of
// v's outgoing edges in insertion order. Once a Graph is handed to an engine
// it must not be mutated until the run returns.
type Graph struct {
	n     int     // vertex count, fixed at construction
	edges []Edge  // edge arena, append-only
	out   [][]int // out[v] = indices into edges, insertion order
}

// New creates an empty Graph with n vertices, indexed 0..n-1, and no edges.
// A negative n is treated as zero.
// Complexity: O(n)
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{
		n:   n,
		out: make([][]int, n),
	}
}

// AddEdge appends one directed edge u→v with the given weight.
//
// Returns ErrInvalidVertex (wrapped with the offending index) if either
// endpoint lies outside [0, VertexCount). Parallel edges and self-loops are
// accepted; nothing is deduplicated and no reverse edge is inserted.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: source %d not in [0,%d)", ErrInvalidVertex, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: destination %d not in [0,%d)", ErrInvalidVertex, v, g.n)
	}

	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
	g.out[u] = append(g.out[u], len(g.edges)-1)

	return nil
}

// AddEdges appends every edge in es, stopping at the first invalid one.
// Edges added before the failure remain in the store.
// Complexity: O(len(es)) amortized
func (g *Graph) AddEdges(es ...Edge) error {
	for _, e := range es {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// VertexCount returns N, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex index for this Graph.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Edge returns the edge stored at arena index i.
// Panics if i is out of range, like any slice access.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns the full edge arena in insertion order.
//
// The returned slice is the store's own backing array: iterate it freely,
// never write through it.
func (g *Graph) Edges() []Edge { return g.edges }

// Neighbors returns the arena indices of v's outgoing edges, in insertion
// order, or ErrInvalidVertex if v is out of range. The returned slice aliases
// internal state and must not be mutated.
// Complexity: O(1)
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("%w: vertex %d not in [0,%d)", ErrInvalidVertex, v, g.n)
	}

	return g.out[v], nil
}

// OutDegree returns the number of outgoing edges of v, counting parallel
// edges and self-loops, or ErrInvalidVertex if v is out of range.
func (g *Graph) OutDegree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("%w: vertex %d not in [0,%d)", ErrInvalidVertex, v, g.n)
	}

	return len(g.out[v]), nil
}

// Clone returns an independent deep copy of g.
//
// Use a Clone when the original must stay mutable while engines run: the
// engines themselves never write to the Graph, but they assume nobody else
// does either for the duration of a run.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		n:     g.n,
		edges: make([]Edge, len(g.edges)),
		out:   make([][]int, g.n),
	}
	copy(cp.edges, g.edges)
	for v, idxs := range g.out {
		if len(idxs) == 0 {
			continue
		}
		cp.out[v] = make([]int, len(idxs))
		copy(cp.out[v], idxs)
	}

	return cp
}
