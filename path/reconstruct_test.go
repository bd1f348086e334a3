// Package path_test exercises predecessor and next-hop reconstruction against
// handcrafted tables, including every error in the reconstruction taxonomy.
package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/path"
)

// chainResult models a run from source 0 over the chain 0→1→2→3, with
// vertex 4 unreachable.
func chainResult() *path.Result {
	return &path.Result{
		Source: 0,
		Dist:   []path.Weight{0, 1, 2, 3, path.Inf},
		Prev:   []int{path.None, 0, 1, 2, path.None},
	}
}

func TestReconstruct_WalksChainBackToSource(t *testing.T) {
	got, err := path.Reconstruct(chainResult(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestReconstruct_TargetIsSource(t *testing.T) {
	got, err := path.Reconstruct(chainResult(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)
}

func TestReconstruct_UnreachableTarget(t *testing.T) {
	_, err := path.Reconstruct(chainResult(), 4)
	assert.ErrorIs(t, err, path.ErrNoPath)
}

func TestReconstruct_InvalidTarget(t *testing.T) {
	_, err := path.Reconstruct(chainResult(), 5)
	assert.ErrorIs(t, err, path.ErrInvalidVertex)

	_, err = path.Reconstruct(chainResult(), -1)
	assert.ErrorIs(t, err, path.ErrInvalidVertex)
}

func TestReconstruct_NegativeCycleFlagBlocksWalk(t *testing.T) {
	res := chainResult()
	res.HasNegativeCycle = true

	// Even a target that would otherwise resolve must be refused.
	_, err := path.Reconstruct(res, 1)
	assert.ErrorIs(t, err, path.ErrNegativeCycle)
}

func TestReconstruct_NilResult(t *testing.T) {
	_, err := path.Reconstruct(nil, 0)
	assert.ErrorIs(t, err, path.ErrNilResult)
}

func TestReconstruct_CyclicPredecessorChainIsCorrupt(t *testing.T) {
	// Prev[1] = 2 and Prev[2] = 1 form a loop that never reaches source 0.
	res := &path.Result{
		Source: 0,
		Dist:   []path.Weight{0, 1, 1},
		Prev:   []int{path.None, 2, 1},
	}
	_, err := path.Reconstruct(res, 1)
	assert.ErrorIs(t, err, path.ErrCorruptResult)
}

func TestReconstruct_BrokenChainIsCorrupt(t *testing.T) {
	// Finite distance but the chain dead-ends before the source.
	res := &path.Result{
		Source: 0,
		Dist:   []path.Weight{0, 5},
		Prev:   []int{path.None, path.None},
	}
	_, err := path.Reconstruct(res, 1)
	assert.ErrorIs(t, err, path.ErrCorruptResult)
}

func TestResult_PathToMatchesReconstruct(t *testing.T) {
	res := chainResult()
	want, err := path.Reconstruct(res, 2)
	require.NoError(t, err)

	got, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// squareAllPairs models the 3-vertex path 0→1→2 in next-hop form, with the
// reverse direction absent.
func squareAllPairs() *path.AllPairsResult {
	inf := path.Inf

	return &path.AllPairsResult{
		Dist: [][]path.Weight{
			{0, 1, 2},
			{inf, 0, 1},
			{inf, inf, 0},
		},
		Next: [][]int{
			{0, 1, 1},
			{path.None, 1, 2},
			{path.None, path.None, 2},
		},
	}
}

func TestAllPairsPath_WalksForward(t *testing.T) {
	got, err := squareAllPairs().Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestAllPairsPath_SelfPath(t *testing.T) {
	got, err := squareAllPairs().Path(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestAllPairsPath_NoReversePath(t *testing.T) {
	_, err := squareAllPairs().Path(2, 0)
	assert.ErrorIs(t, err, path.ErrNoPath)
}

func TestAllPairsPath_InvalidEndpoints(t *testing.T) {
	_, err := squareAllPairs().Path(-1, 0)
	assert.ErrorIs(t, err, path.ErrInvalidVertex)

	_, err = squareAllPairs().Path(0, 3)
	assert.ErrorIs(t, err, path.ErrInvalidVertex)
}

func TestAllPairsPath_NegativeCycleFlagBlocksWalk(t *testing.T) {
	res := squareAllPairs()
	res.HasNegativeCycle = true
	_, err := res.Path(0, 2)
	assert.ErrorIs(t, err, path.ErrNegativeCycle)
}

func TestAllPairsPath_CyclicNextChainIsCorrupt(t *testing.T) {
	// Next[0][2] and Next[1][2] point at each other: the walk can never
	// reach 2 and must be cut off after N steps.
	res := &path.AllPairsResult{
		Dist: [][]path.Weight{
			{0, 1, 1},
			{1, 0, 1},
			{path.Inf, path.Inf, 0},
		},
		Next: [][]int{
			{0, 1, 1},
			{0, 1, 0},
			{path.None, path.None, 2},
		},
	}
	_, err := res.Path(0, 2)
	assert.ErrorIs(t, err, path.ErrCorruptResult)
}
