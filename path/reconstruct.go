package path

import "fmt"

// Reconstruct returns the ordered vertex sequence from res.Source to target
// by walking the predecessor table backward.
//
// Errors, in check order:
//
//   - ErrNilResult      if res is nil.
//   - ErrNegativeCycle  if res.HasNegativeCycle is set.
//   - ErrInvalidVertex  if target is outside [0, N).
//   - ErrNoPath         if Dist[target] == Inf.
//   - ErrCorruptResult  if the walk takes more than N steps, i.e. the
//     predecessor chain contains a cycle. That indicates a bug in the engine
//     that produced res, never a property of the input graph.
//
// Complexity: O(V) time, O(path length) space.
func Reconstruct(res *Result, target int) ([]int, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if res.HasNegativeCycle {
		return nil, ErrNegativeCycle
	}

	n := len(res.Dist)
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrInvalidVertex, target, n)
	}
	if res.Dist[target] == Inf {
		return nil, fmt.Errorf("%w: vertex %d unreachable from %d", ErrNoPath, target, res.Source)
	}

	// Walk target → source via Prev, bounding the walk by n steps so a
	// corrupted chain is reported instead of looping forever.
	rev := make([]int, 0, 8)
	cur := target
	for steps := 0; ; steps++ {
		if steps > n {
			return nil, fmt.Errorf("%w: predecessor chain from %d exceeds %d steps", ErrCorruptResult, target, n)
		}
		rev = append(rev, cur)
		if cur == res.Source {
			break
		}
		cur = res.Prev[cur]
		if cur == None {
			// Finite distance but a broken chain: upstream invariant violated.
			return nil, fmt.Errorf("%w: predecessor chain from %d broken before source", ErrCorruptResult, target)
		}
	}

	// Reverse in place: source first.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// PathTo is shorthand for Reconstruct(r, target).
func (r *Result) PathTo(target int) ([]int, error) {
	return Reconstruct(r, target)
}

// Path returns the ordered vertex sequence from s to t by walking the
// next-hop matrix forward. The error contract matches Reconstruct, with both
// endpoints validated against the matrix dimension.
//
// Complexity: O(V) time, O(path length) space.
func (r *AllPairsResult) Path(s, t int) ([]int, error) {
	if r == nil {
		return nil, ErrNilResult
	}
	if r.HasNegativeCycle {
		return nil, ErrNegativeCycle
	}

	n := len(r.Dist)
	if s < 0 || s >= n {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrInvalidVertex, s, n)
	}
	if t < 0 || t >= n {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrInvalidVertex, t, n)
	}
	if r.Dist[s][t] == Inf {
		return nil, fmt.Errorf("%w: vertex %d unreachable from %d", ErrNoPath, t, s)
	}

	seq := make([]int, 0, 8)
	cur := s
	for steps := 0; ; steps++ {
		if steps > n {
			return nil, fmt.Errorf("%w: next-hop chain %d→%d exceeds %d steps", ErrCorruptResult, s, t, n)
		}
		seq = append(seq, cur)
		if cur == t {
			break
		}
		cur = r.Next[cur][t]
		if cur == None {
			return nil, fmt.Errorf("%w: next-hop chain %d→%d broken", ErrCorruptResult, s, t)
		}
	}

	return seq, nil
}
