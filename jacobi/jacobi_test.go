package jacobi_test

import (
	"math"
	"testing"

	"github.com/S-W-Leong/algorithm-parallelization/jacobi"
	"github.com/S-W-Leong/algorithm-parallelization/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference2x2 builds the hand-checkable system 4x+y=1, x+3y=2 whose exact
// solution is x = [1/11, 7/11].
func reference2x2(t *testing.T) *linsys.System {
	t.Helper()
	s, err := linsys.NewSystem([][]float64{{4, 1}, {1, 3}}, []float64{1, 2})
	require.NoError(t, err)
	return s
}

// TestSequential_Reference2x2 verifies convergence, accuracy, and residual on
// the reference system within a handful of iterations.
func TestSequential_Reference2x2(t *testing.T) {
	sys := reference2x2(t)
	opts := jacobi.DefaultOptions()
	opts.MaxIterations = 100

	res, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)

	assert.True(t, res.Converged, "reference system must converge")
	assert.Less(t, res.Iterations, 100, "must converge well before the cap")
	assert.InDelta(t, 1.0/11.0, res.X[0], 1e-5, "x[0] ≈ 0.0909")
	assert.InDelta(t, 7.0/11.0, res.X[1], 1e-5, "x[1] ≈ 0.6364")

	r, err := sys.ResidualNorm(res.X)
	require.NoError(t, err)
	assert.Less(t, r, 1e-6, "residual must verify the solve")
}

// TestParallel_Reference2x2 runs the same scenario through the parallel
// entry point with two workers.
func TestParallel_Reference2x2(t *testing.T) {
	sys := reference2x2(t)
	opts := jacobi.DefaultOptions()
	opts.MaxIterations = 100
	opts.Workers = 2

	res, err := jacobi.Parallel(sys, nil, opts)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, 1.0/11.0, res.X[0], 1e-5)
	assert.InDelta(t, 7.0/11.0, res.X[1], 1e-5)
}

// TestOptions_Validation covers the explicit rejection of nonsensical
// configurations before the iteration loop.
func TestOptions_Validation(t *testing.T) {
	sys := reference2x2(t)

	cases := []struct {
		name     string
		mutate   func(*jacobi.Options)
		parallel bool
		want     error
	}{
		{"zero tolerance", func(o *jacobi.Options) { o.Tolerance = 0 }, false, jacobi.ErrInvalidTolerance},
		{"negative tolerance", func(o *jacobi.Options) { o.Tolerance = -1e-6 }, true, jacobi.ErrInvalidTolerance},
		{"NaN tolerance", func(o *jacobi.Options) { o.Tolerance = math.NaN() }, false, jacobi.ErrInvalidTolerance},
		{"zero cap", func(o *jacobi.Options) { o.MaxIterations = 0 }, false, jacobi.ErrInvalidMaxIterations},
		{"negative cap", func(o *jacobi.Options) { o.MaxIterations = -7 }, true, jacobi.ErrInvalidMaxIterations},
		{"zero workers", func(o *jacobi.Options) { o.Workers = 0 }, true, jacobi.ErrInvalidWorkers},
		{"negative workers", func(o *jacobi.Options) { o.Workers = -2 }, true, jacobi.ErrInvalidWorkers},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := jacobi.DefaultOptions()
			tc.mutate(&opts)

			var err error
			if tc.parallel {
				_, err = jacobi.Parallel(sys, nil, opts)
			} else {
				_, err = jacobi.Sequential(sys, nil, opts)
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSequential_IgnoresWorkers confirms the sequential entry point does not
// reject a nonsensical worker count: the field only binds Parallel.
func TestSequential_IgnoresWorkers(t *testing.T) {
	sys := reference2x2(t)
	opts := jacobi.DefaultOptions()
	opts.Workers = -5

	_, err := jacobi.Sequential(sys, nil, opts)
	assert.NoError(t, err)
}

// TestSolve_InvalidInputs covers nil systems and malformed initial guesses,
// which surface the linsys sentinels.
func TestSolve_InvalidInputs(t *testing.T) {
	sys := reference2x2(t)
	opts := jacobi.DefaultOptions()

	_, err := jacobi.Sequential(nil, nil, opts)
	assert.ErrorIs(t, err, linsys.ErrNilSystem)

	_, err = jacobi.Parallel(nil, nil, opts)
	assert.ErrorIs(t, err, linsys.ErrNilSystem)

	_, err = jacobi.Sequential(sys, []float64{1}, opts)
	assert.ErrorIs(t, err, linsys.ErrDimensionMismatch, "short guess must be rejected")

	_, err = jacobi.Parallel(sys, []float64{math.NaN(), 0}, opts)
	assert.ErrorIs(t, err, linsys.ErrNaNInf, "non-finite guess must be rejected")
}

// TestSequential_Deterministic asserts bit-identical output across two runs
// with identical inputs.
func TestSequential_Deterministic(t *testing.T) {
	sys, err := linsys.NewDominant(64, 42)
	require.NoError(t, err)
	opts := jacobi.DefaultOptions()

	r1, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)
	r2, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, r1.Iterations, r2.Iterations, "iteration counts must match exactly")
	assert.Equal(t, r1.X, r2.X, "iterates must be bit-identical")
	assert.Equal(t, r1.MaxDiff, r2.MaxDiff)
}

// TestParallel_MatchesSequential asserts worker-count invariance: every
// worker count produces the sequential result bit-for-bit, because the
// per-row kernel and the exact max reduction are shared.
func TestParallel_MatchesSequential(t *testing.T) {
	// Odd size exercises uneven trailing chunks.
	sys, err := linsys.NewDominant(97, 42)
	require.NoError(t, err)
	opts := jacobi.DefaultOptions()

	ref, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)
	require.True(t, ref.Converged)

	for _, workers := range []int{1, 2, 3, 4, 8, 97, 200} {
		opts.Workers = workers
		res, perr := jacobi.Parallel(sys, nil, opts)
		require.NoError(t, perr, "workers=%d", workers)

		assert.Equal(t, ref.Iterations, res.Iterations, "workers=%d iteration count", workers)
		assert.Equal(t, ref.X, res.X, "workers=%d iterate must be bit-identical", workers)
		assert.Equal(t, ref.MaxDiff, res.MaxDiff, "workers=%d final maxDiff", workers)
	}
}

// TestBoundary_TrivialSystem covers n=1: one update lands on the exact
// solution b/a, and a zero right-hand side converges in a single iteration.
func TestBoundary_TrivialSystem(t *testing.T) {
	sys, err := linsys.NewSystem([][]float64{{5}}, []float64{10})
	require.NoError(t, err)

	// Cap at one iteration: the iterate is already exact, the convergence
	// test just has not seen a small step yet.
	opts := jacobi.DefaultOptions()
	opts.MaxIterations = 1
	res, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 2.0, res.X[0], "x[0] = b[0]/A[0][0] after one update")
	assert.False(t, res.Converged, "first step moved by 2.0, above tolerance")

	// Uncapped it settles immediately after.
	opts = jacobi.DefaultOptions()
	res, err = jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 2.0, res.X[0])
	assert.LessOrEqual(t, res.Iterations, 2)

	// Zero rhs: the zero guess is already the fixed point.
	zsys, err := linsys.NewSystem([][]float64{{4}}, []float64{0})
	require.NoError(t, err)
	res, err = jacobi.Parallel(zsys, nil, jacobi.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations, "zero system must converge in exactly one iteration")
	assert.True(t, res.Converged)
}

// TestBoundary_SingleIterationCap ensures MaxIterations=1 performs exactly
// one iteration and reports it, without error.
func TestBoundary_SingleIterationCap(t *testing.T) {
	sys, err := linsys.NewDominant(32, 42)
	require.NoError(t, err)
	opts := jacobi.DefaultOptions()
	opts.MaxIterations = 1
	opts.Workers = 4

	res, err := jacobi.Parallel(sys, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations, "cap of one must yield exactly one iteration")
}

// TestBoundary_UnreachableTolerance ensures an impossible tolerance exhausts
// the cap exactly and stays silent about it.
func TestBoundary_UnreachableTolerance(t *testing.T) {
	sys, err := linsys.NewDominant(100, 42)
	require.NoError(t, err)
	opts := jacobi.DefaultOptions()
	opts.Tolerance = 1e-300
	opts.MaxIterations = 100

	res, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err, "non-convergence is not an error")
	assert.Equal(t, 100, res.Iterations, "must return exactly the cap")
	assert.False(t, res.Converged)
	assert.Greater(t, res.MaxDiff, 0.0)
}

// TestMaxDiff_Trend asserts the convergence scalar shrinks over time on a
// dominant system: fifty extra iterations must reduce it.
func TestMaxDiff_Trend(t *testing.T) {
	sys, err := linsys.NewDominant(100, 42)
	require.NoError(t, err)

	atIteration := func(k int) float64 {
		opts := jacobi.DefaultOptions()
		opts.Tolerance = 1e-300 // never met: run to the cap
		opts.MaxIterations = k
		res, serr := jacobi.Sequential(sys, nil, opts)
		require.NoError(t, serr)
		require.Equal(t, k, res.Iterations)
		return res.MaxDiff
	}

	assert.Less(t, atIteration(60), atIteration(10), "maxDiff at k+50 must undercut maxDiff at k")
}

// TestSolve_ResidualBound checks the accuracy contract: after a converged
// solve, the residual is a modest multiple of the tolerance.
func TestSolve_ResidualBound(t *testing.T) {
	sys, err := linsys.NewDominant(200, 42)
	require.NoError(t, err)
	opts := jacobi.DefaultOptions()

	res, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)

	r, err := sys.ResidualNorm(res.X)
	require.NoError(t, err)
	assert.Less(t, r, 1e-2, "‖Ax−b‖₂ must be a modest multiple of the 1e-6 step tolerance")
}

// TestSolve_GuessMutatedInPlace verifies the in-place contract: the result
// aliases a caller-supplied guess, and a guess at the solution converges in
// one iteration.
func TestSolve_GuessMutatedInPlace(t *testing.T) {
	sys, err := linsys.NewDominant(50, 42)
	require.NoError(t, err)

	exact, err := sys.Exact()
	require.NoError(t, err)

	guess := make([]float64, len(exact))
	copy(guess, exact)

	res, err := jacobi.Parallel(sys, guess, jacobi.DefaultOptions())
	require.NoError(t, err)
	assert.Same(t, &guess[0], &res.X[0], "result must alias the caller's guess")
	assert.Equal(t, 1, res.Iterations, "starting at the solution must settle immediately")
	assert.True(t, res.Converged)
}

// TestSolve_AgainstExactOracle cross-checks the converged iterate against
// the direct LU solution component-wise.
func TestSolve_AgainstExactOracle(t *testing.T) {
	sys, err := linsys.NewDominant(120, 7)
	require.NoError(t, err)

	exact, err := sys.Exact()
	require.NoError(t, err)

	opts := jacobi.DefaultOptions()
	opts.Tolerance = 1e-10
	res, err := jacobi.Sequential(sys, nil, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)

	for i := range exact {
		assert.InDelta(t, exact[i], res.X[i], 1e-8, "component %d", i)
	}
}
