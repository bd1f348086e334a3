package bellmanford_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfind/bellmanford"
	"github.com/katalvlaran/pathfind/core"
)

// BenchmarkBellmanFord_RandomSparse measures a random sparse graph with mixed
// positive and mildly negative weights and no negative cycle (every vertex
// also carries a positive chain edge, keeping totals positive).
func BenchmarkBellmanFord_RandomSparse(b *testing.B) {
	const (
		N = 1000
		E = 5000
	)
	r := rand.New(rand.NewSource(7))
	g := core.New(N)
	for i := 0; i < N-1; i++ {
		_ = g.AddEdge(i, i+1, int64(10+r.Intn(10)))
	}
	for i := 0; i < E; i++ {
		u, v := r.Intn(N), r.Intn(N)
		_ = g.AddEdge(u, v, int64(r.Intn(30)+5))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.BellmanFord(g, 0)
	}
}

// BenchmarkBellmanFord_EarlyExit measures the fixpoint shortcut: a chain
// settles after a handful of passes, far fewer than N-1.
func BenchmarkBellmanFord_EarlyExit(b *testing.B) {
	const N = 2000
	g := core.New(N)
	for i := 0; i < N-1; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.BellmanFord(g, 0)
	}
}
