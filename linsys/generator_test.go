package linsys_test

import (
	"testing"

	"github.com/S-W-Leong/algorithm-parallelization/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dominanceEps is the margin asserted on generated systems; construction
// guarantees an integer margin of at least 1.
const dominanceEps = 1.0 - 1e-12

// TestNewDominant_InvalidSize verifies n <= 0 is rejected.
func TestNewDominant_InvalidSize(t *testing.T) {
	_, err := linsys.NewDominant(0, 42)
	assert.ErrorIs(t, err, linsys.ErrInvalidDimensions, "n=0 must error")

	_, err = linsys.NewDominant(-3, 42)
	assert.ErrorIs(t, err, linsys.ErrInvalidDimensions, "negative n must error")
}

// TestNewDominant_Deterministic ensures a fixed (n, seed) pair reproduces
// the exact same system, and a different seed does not.
func TestNewDominant_Deterministic(t *testing.T) {
	s1, err := linsys.NewDominant(64, 42)
	require.NoError(t, err)
	s2, err := linsys.NewDominant(64, 42)
	require.NoError(t, err)

	assert.Equal(t, s1, s2, "same (n, seed) must be bit-identical")

	s3, err := linsys.NewDominant(64, 43)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s3, "different seeds must differ")
}

// TestNewDominant_Dominance asserts the strict dominance invariant across a
// spread of sizes, including the trivial n=1.
func TestNewDominant_Dominance(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 100, 500} {
		s, err := linsys.NewDominant(n, 42)
		require.NoError(t, err, "n=%d must generate", n)
		assert.True(t, s.IsDominant(dominanceEps), "n=%d must be strictly dominant", n)
	}
}

// TestNewDominant_ValueRanges checks the documented generator ranges:
// off-diagonals in [0, 0.9], diagonal margin in [1, 10], rhs in [0, 9.9].
func TestNewDominant_ValueRanges(t *testing.T) {
	const n = 32
	s, err := linsys.NewDominant(n, 7)
	require.NoError(t, err)

	var i, j int
	var rowSum float64
	for i = 0; i < n; i++ {
		rowSum = 0.0
		for j = 0; j < n; j++ {
			v, aerr := s.At(i, j)
			require.NoError(t, aerr)
			if i == j {
				continue
			}
			assert.GreaterOrEqual(t, v, 0.0, "off-diagonal lower bound")
			assert.LessOrEqual(t, v, 0.9, "off-diagonal upper bound")
			rowSum += v
		}
		diag, aerr := s.At(i, i)
		require.NoError(t, aerr)
		assert.GreaterOrEqual(t, diag, rowSum+1.0, "diagonal margin lower bound")
		assert.LessOrEqual(t, diag, rowSum+10.0, "diagonal margin upper bound")

		assert.GreaterOrEqual(t, s.B()[i], 0.0, "rhs lower bound")
		assert.LessOrEqual(t, s.B()[i], 9.9, "rhs upper bound")
	}
}

// TestIsDominant_Negative ensures IsDominant rejects a matrix whose diagonal
// only ties its row sum (strictness) or is outright dominated.
func TestIsDominant_Negative(t *testing.T) {
	tie, err := linsys.NewSystem([][]float64{
		{1, 1},
		{1, 1},
	}, []float64{1, 1})
	require.NoError(t, err)
	assert.False(t, tie.IsDominant(0.5), "tied diagonal must fail a positive margin")

	weak, err := linsys.NewSystem([][]float64{
		{0.5, 2},
		{2, 0.5},
	}, []float64{1, 1})
	require.NoError(t, err)
	assert.False(t, weak.IsDominant(0), "dominated diagonal must fail")
}
