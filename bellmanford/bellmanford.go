package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/path"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to BellmanFord.
var ErrNilGraph = errors.New("bellmanford: graph is nil")

// BellmanFord computes shortest distances and predecessors from source,
// accepting negative edge weights.
//
// Validation, in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, VertexCount) (core.ErrInvalidVertex).
//
// When the returned Result has HasNegativeCycle set, a negative-weight cycle
// is reachable from source: Dist and Prev must not be interpreted and no
// path may be reconstructed from them.
//
// The Result is freshly allocated per call; concurrent runs against the same
// read-only Graph are safe.
//
// Complexity: O(V·E) time, O(V) space.
func BellmanFord(g *core.Graph, source int) (*path.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", core.ErrInvalidVertex, source, g.VertexCount())
	}

	n := g.VertexCount()
	dist := make([]path.Weight, n)
	prev := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = path.Inf
		prev[v] = path.None
	}
	dist[source] = 0

	edges := g.Edges()

	// Phase 1: at most N-1 full passes. After pass k every shortest path of
	// at most k edges is final, so N-1 passes suffice for any simple path.
	// A pass with no change means a fixpoint was reached early.
	for pass := 1; pass < n; pass++ {
		changed := false
		for _, e := range edges {
			if cand, ok := relaxed(dist, e); ok {
				dist[e.To] = cand
				prev[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Phase 2: one more pass. Any edge still relaxable proves a negative
	// cycle reachable from source (unreachable cycles stay behind the Inf
	// guard and are invisible here, by contract).
	res := &path.Result{Source: source, Dist: dist, Prev: prev}
	for _, e := range edges {
		if _, ok := relaxed(dist, e); ok {
			res.HasNegativeCycle = true
			break
		}
	}

	return res, nil
}

// relaxed reports whether edge e improves dist[e.To], returning the candidate
// distance when it does. Relaxation only proceeds from vertices with a finite
// distance; a positive weight that would wrap past Inf is skipped, since such
// a candidate cannot improve anything representable.
func relaxed(dist []path.Weight, e core.Edge) (path.Weight, bool) {
	du := dist[e.From]
	if du == path.Inf {
		return 0, false
	}
	if e.Weight > 0 && du > path.Inf-e.Weight {
		return 0, false
	}

	cand := du + e.Weight
	if cand >= dist[e.To] {
		return 0, false
	}

	return cand, true
}

// Engine adapts BellmanFord to the path.SingleSource capability.
type Engine struct{}

// NewEngine returns a stateless, reusable Engine.
func NewEngine() *Engine { return &Engine{} }

// Run implements path.SingleSource.
func (*Engine) Run(g *core.Graph, source int) (*path.Result, error) {
	return BellmanFord(g, source)
}
