package jacobi

import (
	"fmt"

	"github.com/S-W-Leong/algorithm-parallelization/linsys"
)

// Operation tags used in wrapped errors.
const (
	opSequential = "Sequential"
	opParallel   = "Parallel"
)

// jacobiErrorf wraps err with an operation tag, preserving errors.Is matching.
func jacobiErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// prepareGuess validates a caller-supplied initial guess or allocates the
// zero starting guess when x is nil. The returned slice is the one the solve
// mutates in place.
func prepareGuess(sys *linsys.System, x []float64) ([]float64, error) {
	if x == nil {
		return make([]float64, sys.N()), nil
	}
	if err := linsys.ValidateVecLen(x, sys.N()); err != nil {
		return nil, err
	}
	if err := linsys.ValidateFinite(x); err != nil {
		return nil, err
	}
	return x, nil
}

// Sequential — single-threaded Jacobi iteration
//
// Description:
//
//	Solves Ax = b iteratively for strictly diagonally dominant A: every
//	component of the next iterate is computed from the previous full
//	iterate, never from partially updated values (the property that
//	distinguishes Jacobi from Gauss-Seidel). This is the reference
//	implementation the parallel variant is measured against.
//
// Algorithm Outline, per iteration:
//  1. For each row i in [0, n):
//     sigma     = Σ_{j≠i} A[i][j]·x[j]   (fixed ascending j order)
//     xNew[i]   = (b[i] − sigma) / A[i][i]
//  2. maxDiff = max_i |xNew[i] − x[i]|.
//  3. Commit: copy xNew into x entirely.
//  4. Stop early once maxDiff < Tolerance, else continue to MaxIterations.
//
// Convergence:
//
//	Guaranteed for strictly diagonally dominant A (see linsys.NewDominant).
//	The solver does NOT validate that precondition: on non-dominant input it
//	may fail to converge or drift to ±Inf/NaN, which the caller detects via
//	Result.Converged or a residual check. Exhausting MaxIterations is NOT an
//	error: the result carries the best iterate obtained.
//
// Inputs:
//   - sys:  the read-only system (nil → linsys.ErrNilSystem).
//   - x:    initial guess, mutated in place; nil means the zero vector
//     (len(x) != n → linsys.ErrDimensionMismatch, non-finite →
//     linsys.ErrNaNInf).
//   - opts: Tolerance and MaxIterations (Workers is ignored here).
//
// Returns (*Result, error): the final iterate with its iteration count, or a
// wrapped sentinel for invalid input.
//
// Determinism: bit-identical X and Iterations for identical inputs.
// Complexity: Time O(MaxIterations·n²), Space O(n) for the scratch iterate.
func Sequential(sys *linsys.System, x []float64, opts Options) (*Result, error) {
	if err := linsys.ValidateNotNil(sys); err != nil {
		return nil, jacobiErrorf(opSequential, err)
	}
	if err := opts.validate(false); err != nil {
		return nil, jacobiErrorf(opSequential, err)
	}
	x, err := prepareGuess(sys, x)
	if err != nil {
		return nil, jacobiErrorf(opSequential, err)
	}

	n := sys.N()
	xNew := make([]float64, n) // scratch iterate, never escapes this call

	var iterations int
	var maxDiff float64
	for iter := 0; iter < opts.MaxIterations; iter++ {
		// 1+2) Update every row from the previous iterate, tracking maxDiff.
		maxDiff = updateRange(sys, x, xNew, 0, n)

		// 3) Commit the full iterate.
		copy(x, xNew)

		// 4) Count, report, test convergence.
		iterations++
		if opts.Verbose {
			fmt.Printf("Sequential: iter=%d maxDiff=%.3e\n", iterations, maxDiff)
		}
		if maxDiff < opts.Tolerance {
			break
		}
	}

	return &Result{
		X:          x,
		Iterations: iterations,
		Converged:  maxDiff < opts.Tolerance,
		MaxDiff:    maxDiff,
	}, nil
}
