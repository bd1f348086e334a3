// Package pathfind is an exact shortest-path engine for directed,
// edge-weighted graphs: single-source and all-pairs, with negative-weight
// support and negative-cycle detection.
//
// 🚀 What is pathfind?
//
//	A small, focused, pure-Go library that brings together:
//		• core/          — dense, index-addressed graph store (the foundation every engine reads)
//		• dijkstra/      — single-source shortest paths, non-negative weights, O((V+E) log V)
//		• bellmanford/   — single-source shortest paths tolerating negative weights,
//		                   with negative-cycle detection, O(V·E)
//		• floydwarshall/ — all-pairs shortest paths via dynamic programming, O(V³)
//		• path/          — shared result model and path reconstruction
//
// ✨ Why choose pathfind?
//
//   - Exact algorithms only: Dijkstra, Bellman-Ford, Floyd-Warshall; no heuristics
//   - Deterministic: fixed relaxation order, reproducible distance and parent tables
//   - Concurrency-friendly: a finalized Graph is read-only; run any number of
//     engines in parallel against the same store, each with its own Result
//   - Pure Go: no cgo, no I/O, no hidden state between invocations
//
// Typical flow: build a core.Graph, hand it to exactly one engine, then ask
// the path package to turn the resulting predecessor (or next-hop) table into
// an explicit vertex sequence:
//
//	g := core.New(6)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(2, 1, 2)
//	res, _ := dijkstra.Dijkstra(g, 0)
//	route, _ := path.Reconstruct(res, 1) // [0 2 1]
//
// Engine selection is also available behind the path.SingleSource and
// path.AllPairs interfaces, so callers can pick an algorithm via
// configuration without hardcoding control flow.
package pathfind
