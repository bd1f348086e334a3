// Package path defines the shared result model produced by every pathfind
// engine and the reconstruction routines that turn predecessor and next-hop
// tables into explicit vertex sequences.
//
// What
//
//   - Weight, Inf, None: the numeric vocabulary all engines share. A distance
//     of Inf means "unreachable"; a table entry of None means "no
//     predecessor / no next hop".
//   - Result: one single-source run (source, distance table, predecessor
//     table, negative-cycle flag).
//   - AllPairsResult: one all-pairs run (N×N distance matrix, N×N next-hop
//     matrix, negative-cycle flag).
//   - Reconstruct / Result.PathTo: walk the predecessor chain backward from a
//     target to the source.
//   - AllPairsResult.Path: walk the next-hop chain forward from source to
//     target.
//   - SingleSource / AllPairs: the engine capabilities, so callers can select
//     an algorithm via configuration instead of hardcoding control flow.
//
// Why
//
//	Distance computation and path extraction have different failure modes.
//	Unreachable targets and negative cycles are normal, semantic outcomes;
//	they live in the Result and only surface as errors (ErrNoPath,
//	ErrNegativeCycle) when a path is actually requested. A reconstruction
//	walk that exceeds N steps means an engine invariant was violated
//	upstream and is reported as ErrCorruptResult; treat it as a bug, not a
//	recoverable condition.
//
// Complexity
//
//	Every reconstruction walk terminates in at most N steps: O(V) time,
//	O(path length) space.
package path
