// Package jacobi implements the Jacobi iterative method for dense linear
// systems Ax = b in two interchangeable variants: a single-threaded reference
// (Sequential) and a data-parallel fork-join version (Parallel). The package
// exists to let callers benchmark the parallelization and validate that it
// preserves numerical behavior, so both variants share one row-update kernel
// and one termination policy.
//
// # Method
//
// Per iteration, every component of the next iterate is computed from the
// previous full iterate:
//
//	xNew[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//
// then xNew is committed into x wholesale. The iteration stops once the
// largest per-component change (maxDiff) falls below Options.Tolerance, or
// silently at Options.MaxIterations — non-convergence is reported through
// Result.Converged, never as an error. Convergence is guaranteed when A is
// strictly diagonally dominant (linsys.NewDominant constructs such systems);
// the solvers do not validate that precondition.
//
// # Parallel decomposition
//
// Parallel statically partitions the row range into contiguous blocks, one
// per worker, over a fixed goroutine pool created per solve:
//
//	update blocks ─┬─ barrier ── combine maxDiff ── commit blocks ─┬─ barrier ──▶ next iteration
//	  (parallel)   ┘             (single-threaded)   (parallel)    ┘
//
// Each worker owns a private slot for its block-local maximum change; a
// single-threaded combine reads the slots only after the join barrier, so no
// shared mutable scalar and no locks exist anywhere in the loop. Both
// barriers per iteration are mandatory for correctness.
//
// # API
//
//	res, err := jacobi.Sequential(sys, nil, jacobi.DefaultOptions())
//
//	opts := jacobi.DefaultOptions()
//	opts.Workers = 8
//	res, err = jacobi.Parallel(sys, nil, opts)
//
// Both entry points accept an optional initial guess (nil means the zero
// vector) and mutate it in place; Result.X aliases it. There is no
// cancellation channel: a solve runs to convergence or the cap.
//
// # Errors
//
//	ErrInvalidTolerance     - Tolerance <= 0 or NaN.
//	ErrInvalidMaxIterations - MaxIterations <= 0.
//	ErrInvalidWorkers       - Workers <= 0 (Parallel only).
//	linsys.ErrNilSystem / linsys.ErrDimensionMismatch / linsys.ErrNaNInf
//	                        - invalid system or initial guess.
//
// # Integration
//
//   - Inputs come from github.com/S-W-Leong/algorithm-parallelization/linsys.
//   - github.com/S-W-Leong/algorithm-parallelization/bench drives both
//     variants across size × worker grids and reports speedup/efficiency.
package jacobi
