// Package jacobi: sentinel error set for solver configuration.
// Input-shape failures (nil system, mismatched vectors, non-finite guesses)
// surface the linsys sentinels instead; this file owns only the options
// surface. Tests match every sentinel via errors.Is.

package jacobi

import "errors"

var (
	// ErrInvalidTolerance indicates Options.Tolerance <= 0 or NaN.
	// The convergence test "maxDiff < tolerance" needs a positive threshold.
	ErrInvalidTolerance = errors.New("jacobi: tolerance must be > 0")

	// ErrInvalidMaxIterations indicates Options.MaxIterations <= 0.
	// The iteration cap bounds the loop; zero or negative caps would skip it silently.
	ErrInvalidMaxIterations = errors.New("jacobi: max iterations must be > 0")

	// ErrInvalidWorkers indicates Options.Workers <= 0 on the parallel entry point.
	ErrInvalidWorkers = errors.New("jacobi: workers must be > 0")
)
