package dijkstra

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/path"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of g reachable through non-negative edges.
//
// Validation, in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, VertexCount) (core.ErrInvalidVertex).
//  3. With WithValidateWeights() only: no edge may be negative
//     (ErrNegativeWeight).
//
// The returned Result is freshly allocated on every call; nothing is shared
// or reused between invocations, so concurrent runs against the same Graph
// are safe.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*path.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", core.ErrInvalidVertex, source, g.VertexCount())
	}

	// Optional fail-fast pre-scan. Kept out of the hot path: by default a
	// negative weight is a documented precondition violation, not an error.
	if cfg.ValidateWeights {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	r := newRunner(g, cfg, source)
	r.process()

	return &path.Result{
		Source: source,
		Dist:   r.dist,
		Prev:   r.prev,
	}, nil
}

// runner holds the mutable state of a single Dijkstra execution. It is
// created per call and discarded afterwards; in particular the heap is never
// pooled across runs, so no stale entries can leak between invocations.
type runner struct {
	g    *core.Graph
	opts Options

	dist    []path.Weight // dist[v] = best known distance source→v
	prev    []int         // prev[v] = parent of v on that path
	visited []bool        // visited[v] = distance finalized

	// heap is the indexed min-heap keyed by tentative distance.
	heap *yagh.IntMap[int64]
}

// newRunner allocates fresh tables, seeds the source at distance zero, and
// puts it on the heap.
func newRunner(g *core.Graph, cfg Options, source int) *runner {
	n := g.VertexCount()

	r := &runner{
		g:       g,
		opts:    cfg,
		dist:    make([]path.Weight, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		heap:    yagh.New[int64](n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = path.Inf
		r.prev[v] = path.None
	}
	r.dist[source] = 0
	r.heap.Put(source, 0)

	return r
}

// process repeatedly extracts the minimum-distance vertex, finalizes it, and
// relaxes its outgoing edges. The loop ends when the heap is empty or when
// the minimum distance exceeds the configured cap.
func (r *runner) process() {
	for r.heap.Size() > 0 {
		entry := r.heap.Pop()
		u, d := entry.Elem, entry.Cost

		if d > r.opts.MaxDistance {
			break
		}
		r.visited[u] = true

		r.relax(u)
	}
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) {
	out, _ := r.g.Neighbors(u) // u was range-checked before finalization

	for _, ei := range out {
		e := r.g.Edge(ei)
		v := e.To

		// A self-loop can never shorten a path.
		if v == u {
			continue
		}

		// Never touch a finalized vertex. With non-negative weights no
		// improvement is possible anyway; under a precondition violation
		// this same check is what guarantees the run still terminates.
		if r.visited[v] {
			continue
		}

		// A weight large enough to wrap past Inf cannot improve anything
		// representable.
		if e.Weight > 0 && r.dist[u] > path.Inf-e.Weight {
			continue
		}

		cand := r.dist[u] + e.Weight
		if cand > r.opts.MaxDistance {
			continue
		}

		// Strict improvement only: on ties the first parent found wins,
		// which keeps parent choice deterministic for a fixed edge order.
		if cand >= r.dist[v] {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = u
		r.heap.Put(v, cand) // insert or decrease-key
	}
}

// Engine adapts Dijkstra to the path.SingleSource capability so callers can
// select an algorithm via configuration.
type Engine struct {
	opts []Option
}

// NewEngine returns a reusable Engine applying the given options on every
// run. The Engine itself is stateless and safe for concurrent use.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: opts}
}

// Run implements path.SingleSource.
func (e *Engine) Run(g *core.Graph, source int) (*path.Result, error) {
	return Dijkstra(g, source, e.opts...)
}
