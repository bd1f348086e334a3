// Package dijkstra computes single-source shortest paths over a core.Graph
// whose edge weights are all non-negative.
//
// What
//
//   - Dijkstra(g, source, opts...) returns a path.Result: distance table,
//     predecessor table, and the source vertex.
//   - Vertices are processed in non-decreasing distance order using an indexed
//     min-heap with decrease-key, so each vertex carries at most one live
//     queue entry and is finalized exactly once.
//   - Relaxation follows each vertex's outgoing edges in insertion order and
//     only strict improvements update a distance or parent, so results are
//     fully reproducible for a given edge insertion order.
//
// Precondition: non-negative weights
//
//	Every edge weight reachable from source must be ≥ 0. This is NOT checked
//	at run time: once a vertex is finalized its distance is never revisited,
//	so a negative weight silently yields an incorrect (too optimistic or
//	inconsistent) result. The run still terminates. Callers that cannot
//	guarantee the precondition should either enable WithValidateWeights(),
//	which spends one O(E) pre-scan to fail fast with ErrNegativeWeight, or
//	use the bellmanford engine, which tolerates negative weights outright.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:  O((V + E) log V) with the binary heap
//   - Space: O(V) for the distance, predecessor, and visited tables; the heap
//     holds at most V entries thanks to decrease-key
//
// Errors (sentinel)
//
//   - ErrNilGraph            if g is nil.
//   - core.ErrInvalidVertex  if source is outside [0, VertexCount).
//   - ErrNegativeWeight      only with WithValidateWeights(), before the
//     main loop runs.
package dijkstra
