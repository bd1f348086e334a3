// This file declares the shared numeric sentinels, the Result and
// AllPairsResult types, the reconstruction error taxonomy, and the engine
// capability interfaces.
package path

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Weight is the signed distance type used by every engine.
type Weight = int64

const (
	// Inf is the distance of an unreachable vertex.
	Inf Weight = math.MaxInt64

	// None marks an absent predecessor or next hop.
	None = -1
)

// Sentinel errors for path reconstruction.
var (
	// ErrNilResult indicates a nil Result or AllPairsResult was supplied.
	ErrNilResult = errors.New("path: result is nil")

	// ErrInvalidVertex indicates a source or target index outside [0, N).
	ErrInvalidVertex = errors.New("path: vertex index out of range")

	// ErrNegativeCycle indicates the Result carries a negative-cycle flag:
	// its tables are not meaningful and no path may be reconstructed.
	ErrNegativeCycle = errors.New("path: negative cycle detected")

	// ErrNoPath indicates the target is unreachable from the source.
	// This is an expected outcome, distinct from ErrInvalidVertex.
	ErrNoPath = errors.New("path: no path exists")

	// ErrCorruptResult indicates a reconstruction walk exceeded N steps,
	// which can only happen if an engine's invariants were violated.
	ErrCorruptResult = errors.New("path: corrupt result, reconstruction cycle")
)

// Result is the outcome of one single-source engine run.
//
// Dist and Prev both have length N. Dist[v] is the shortest distance from
// Source to v, or Inf if v is unreachable. Prev[v] is the vertex immediately
// before v on a shortest path, or None for the source and for unreachable
// vertices.
//
// When HasNegativeCycle is true (Bellman-Ford only), a negative-weight cycle
// is reachable from Source: Dist and Prev are not meaningful and any
// reconstruction attempt fails with ErrNegativeCycle.
type Result struct {
	// Source is the vertex the run started from.
	Source int

	// Dist is the distance table, one entry per vertex.
	Dist []Weight

	// Prev is the predecessor table, one entry per vertex.
	Prev []int

	// HasNegativeCycle reports that the distances diverge to -∞.
	HasNegativeCycle bool
}

// AllPairsResult is the outcome of one all-pairs engine run.
//
// Dist and Next are N×N. Dist[i][j] is the shortest distance i→j or Inf.
// Next[i][j] is the first hop after i on a shortest path to j, or None when
// no path exists; Next[i][i] == i. A forward walk along Next reconstructs any
// path without a per-source predecessor table.
//
// When HasNegativeCycle is true, some Dist[i][i] < 0: the whole result is
// unusable for reconstruction, matching the single-source contract.
type AllPairsResult struct {
	// Dist is the N×N distance matrix.
	Dist [][]Weight

	// Next is the N×N next-hop matrix.
	Next [][]int

	// HasNegativeCycle reports that some diagonal entry went negative.
	HasNegativeCycle bool
}

// SingleSource is the capability shared by the Dijkstra and Bellman-Ford
// engines: run against a read-only graph from one source vertex and produce
// a fresh Result.
type SingleSource interface {
	Run(g *core.Graph, source int) (*Result, error)
}

// AllPairs is the capability of the Floyd-Warshall engine: run against a
// read-only graph and produce a fresh AllPairsResult.
type AllPairs interface {
	Run(g *core.Graph) (*AllPairsResult, error)
}
