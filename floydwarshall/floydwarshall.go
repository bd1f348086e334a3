package floydwarshall

import (
	"errors"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/path"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to FloydWarshall.
var ErrNilGraph = errors.New("floydwarshall: graph is nil")

// FloydWarshall computes shortest distances between every ordered vertex
// pair of g, together with a next-hop matrix for forward path walks.
//
// The result is freshly allocated per call. Distances for pairs untouched by
// any negative cycle remain exact even when HasNegativeCycle is set, but the
// whole result is refused for reconstruction in that case; callers needing
// per-pair salvage should fall back to per-source bellmanford runs.
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g *core.Graph) (*path.AllPairsResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	dist, next := newMatrices(n)

	// Seed direct edges. Parallel edges collapse to their minimum; a
	// negative self-loop lands on the diagonal here and is what the final
	// scan picks up as a one-vertex negative cycle.
	for _, e := range g.Edges() {
		if e.Weight < dist[e.From][e.To] {
			dist[e.From][e.To] = e.Weight
			next[e.From][e.To] = e.To
		}
	}

	// Fixed k→i→j order keeps accumulation deterministic. The i-level skip
	// on an unreachable intermediate saves the whole inner loop.
	for k := 0; k < n; k++ {
		dk := dist[k]
		for i := 0; i < n; i++ {
			ik := dist[i][k]
			if ik == path.Inf {
				continue
			}
			di := dist[i]
			for j := 0; j < n; j++ {
				kj := dk[j]
				if kj == path.Inf {
					continue
				}
				// Two huge positive legs would wrap past Inf; such a
				// candidate cannot beat any stored distance.
				if ik > 0 && kj > 0 && ik > path.Inf-kj {
					continue
				}
				if cand := ik + kj; cand < di[j] {
					di[j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	res := &path.AllPairsResult{Dist: dist, Next: next}

	// Diagonal scan: a vertex cheaper to revisit than to stay at proves a
	// negative cycle somewhere in the graph.
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			res.HasNegativeCycle = true
			break
		}
	}

	return res, nil
}

// newMatrices allocates the N×N distance and next-hop tables over single
// flat buffers, initialized to Inf/None off-diagonal and 0/self on the
// diagonal.
func newMatrices(n int) ([][]path.Weight, [][]int) {
	distData := make([]path.Weight, n*n)
	nextData := make([]int, n*n)
	for i := range distData {
		distData[i] = path.Inf
		nextData[i] = path.None
	}

	dist := make([][]path.Weight, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = distData[i*n : (i+1)*n]
		next[i] = nextData[i*n : (i+1)*n]
		dist[i][i] = 0
		next[i][i] = i
	}

	return dist, next
}

// Engine adapts FloydWarshall to the path.AllPairs capability.
type Engine struct{}

// NewEngine returns a stateless, reusable Engine.
func NewEngine() *Engine { return &Engine{} }

// Run implements path.AllPairs.
func (*Engine) Run(g *core.Graph) (*path.AllPairsResult, error) {
	return FloydWarshall(g)
}
