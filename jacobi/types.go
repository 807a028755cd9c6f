// Package jacobi defines options and results for the Jacobi solvers.
package jacobi

import (
	"math"
	"runtime"
)

// Defaults - single source of truth for zero-config behavior.
const (
	// DefaultTolerance is the convergence threshold on the per-iteration
	// maximum component change.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the iteration loop when the tolerance is
	// never met.
	DefaultMaxIterations = 10_000
)

// Options configures one solve.
//
// Fields:
//   - Tolerance     — stop once the largest per-component change between two
//     consecutive iterates falls below this positive threshold.
//   - MaxIterations — hard cap on iterations; reaching it is NOT an error
//     (see Result.Converged).
//   - Workers       — number of concurrent workers, Parallel only; Sequential
//     ignores it. May exceed the system size, extra workers stay idle.
//   - Verbose       — print one progress line per iteration via fmt.Printf.
//
// Example:
//
//	opts := jacobi.DefaultOptions()
//	opts.Workers = 4
//
//	res, err := jacobi.Parallel(sys, nil, opts)
//	if err != nil {
//	  // handle ErrInvalidTolerance / ErrInvalidMaxIterations / ErrInvalidWorkers
//	}
//	fmt.Println("iterations:", res.Iterations, "converged:", res.Converged)
type Options struct {
	Tolerance     float64
	MaxIterations int
	Workers       int
	Verbose       bool
}

// DefaultOptions returns production-safe defaults: DefaultTolerance,
// DefaultMaxIterations, one worker per available CPU, quiet.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Workers:       runtime.GOMAXPROCS(0),
		Verbose:       false,
	}
}

// validate rejects nonsensical configurations before the iteration loop.
// Workers is checked only when the parallel entry point is used.
// Returns bare sentinels; facades wrap them with an operation tag.
func (o Options) validate(parallel bool) error {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		return ErrInvalidTolerance
	}
	if o.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}
	if parallel && o.Workers <= 0 {
		return ErrInvalidWorkers
	}
	return nil
}

// Result reports one finished solve.
//
// Fields:
//   - X          — the final iterate. When the caller supplied a non-nil
//     initial guess, X aliases it (the solve mutates the guess in place).
//   - Iterations — iterations performed, in [1, MaxIterations].
//   - Converged  — whether the last iteration's maxDiff fell below the
//     tolerance. False means the cap was exhausted; callers can equally
//     compare Iterations against their cap.
//   - MaxDiff    — the last iteration's maximum component change, the
//     convergence scalar callers can inspect for trend checks.
type Result struct {
	X          []float64
	Iterations int
	Converged  bool
	MaxDiff    float64
}
