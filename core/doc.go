// Package core provides the dense, index-addressed graph store that every
// shortest-path engine in pathfind reads.
//
// What
//
//   - Graph: a directed, edge-weighted multigraph over N vertices identified
//     by dense integer indices in [0, N).
//   - Edges live in a single append-only arena ([]Edge); each vertex keeps an
//     ordered list of indices into that arena for its outgoing edges.
//   - Parallel edges between the same ordered pair are permitted and kept
//     separately; self-loops are permitted. The store never deduplicates and
//     never inserts reverse edges — model an undirected graph by adding both
//     directions explicitly.
//
// Why
//
//   - Index-addressed arrays (rather than pointer/object graphs) avoid cyclic
//     ownership, keep every table a flat slice, and make a finalized Graph
//     trivially shareable across concurrent engine runs.
//   - A stable edge order per vertex makes relaxation order, and therefore
//     parent choice on equal-length paths, fully reproducible.
//
// Concurrency
//
//	Build the Graph first, then treat it as read-only for the duration of any
//	engine invocation. Concurrent reads are safe; the store gives no isolation
//	guarantee against mutation during a run — callers that must mutate
//	concurrently should work on a Clone.
//
// Complexity (V = vertex count, E = edge count)
//
//   - AddEdge:   O(1) amortized
//   - Neighbors: O(1) (returns the internal index list)
//   - Clone:     O(V + E)
package core
