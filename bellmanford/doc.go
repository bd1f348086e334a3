// Package bellmanford computes single-source shortest paths over a
// core.Graph, tolerating negative edge weights and detecting negative cycles.
//
// What
//
//   - BellmanFord(g, source) returns a path.Result: distance table,
//     predecessor table, and a negative-cycle flag.
//   - The algorithm performs up to N-1 relaxation passes over the entire edge
//     arena (not just a frontier), then one extra pass: if any edge can still
//     be relaxed, a negative-weight cycle is reachable from the source. In
//     that case HasNegativeCycle is set and the tables are not meaningful;
//     path.Reconstruct refuses such a Result with ErrNegativeCycle.
//   - A pass that changes nothing ends the relaxation phase early; this is an
//     optimization only and never alters the outcome.
//
// Why
//
//	This is the general-purpose fallback whenever Dijkstra's non-negativity
//	precondition cannot be guaranteed. The price is asymptotic: O(V·E)
//	against Dijkstra's O((V+E) log V). Unreachable negative cycles do not
//	trigger the flag; only cycles that can actually pull some reachable
//	distance toward -∞ do.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:  O(V·E)
//   - Space: O(V)
//
// Errors (sentinel)
//
//   - ErrNilGraph            if g is nil.
//   - core.ErrInvalidVertex  if source is outside [0, VertexCount).
package bellmanford
