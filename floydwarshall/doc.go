// Package floydwarshall computes all-pairs shortest paths over a core.Graph
// by dynamic programming, tolerating negative edge weights and detecting
// negative cycles.
//
// What
//
//   - FloydWarshall(g) returns a path.AllPairsResult: an N×N distance matrix,
//     an N×N next-hop matrix, and a negative-cycle flag.
//   - The matrix is seeded with 0 on the diagonal and the minimum direct edge
//     weight elsewhere (parallel edges collapse to their cheapest), Inf where
//     no direct edge exists. The triple loop then runs in a fixed k→i→j
//     order, so accumulation is deterministic; rows unreachable through the
//     current intermediate are skipped without touching the inner loop.
//   - A next-hop table is kept instead of a predecessor table: Next[i][j] is
//     the first vertex after i on a shortest i→j path, which lets
//     AllPairsResult.Path walk forward without per-source state.
//   - After the triple loop the diagonal is scanned: any Dist[i][i] < 0 means
//     some negative cycle exists, the flag is set, and the whole result is
//     unusable for reconstruction, matching the bellmanford contract.
//
// Why
//
//	O(V³) time and O(V²) space are only acceptable for dense or small
//	graphs. For sparse graphs with many vertices, prefer running the
//	dijkstra (or bellmanford) engine once per source instead; the engines
//	share the core.Graph read-only, so those runs can proceed in parallel.
//
// Complexity (V = |vertices|)
//
//   - Time:  O(V³)
//   - Space: O(V²)
//
// Errors (sentinel)
//
//   - ErrNilGraph if g is nil.
package floydwarshall
