// Package linsys provides dense linear systems Ax = b as the shared input
// contract of the iterative solvers in this module. A System bundles an n×n
// coefficient matrix (flat row-major storage) with its right-hand side and is
// immutable after construction, so one instance can back any number of
// concurrent solver runs without synchronization.
//
// # Construction
//
// Two constructors cover the two supply paths:
//
//   - NewSystem(a, b) ingests caller data, validating shape (square, matching
//     lengths) and the strict finite-value policy (NaN/±Inf rejected).
//   - NewDominant(n, seed) generates a strictly diagonally dominant system
//     deterministically from a seed, the canonical benchmark input: dominance
//     is the convergence precondition of the Jacobi iteration, and the
//     solvers themselves never validate it.
//
// # Verification
//
// Post-solve checks live here, outside any solver loop:
//
//   - ResidualNorm(x) returns ‖A·x − b‖₂ (gonum floats under the hood).
//   - Exact() returns the direct LU solution (gonum mat), the oracle against
//     which iterative results are measured.
//   - IsDominant(eps) re-checks the dominance margin diagnostically.
//
// # Errors
//
//	ErrInvalidDimensions - n <= 0 or empty/ragged input matrix.
//	ErrDimensionMismatch - vector length does not match the system size.
//	ErrIndexOutOfBounds  - At index outside [0, n).
//	ErrNaNInf            - non-finite value at ingestion.
//	ErrNilSystem         - nil *System receiver or argument.
//	ErrSingular          - Exact met a singular/ill-conditioned matrix.
//
// All sentinels match via errors.Is through the operation-tag wrapping used
// at the public surface.
//
// # Integration
//
//   - Consumed by github.com/S-W-Leong/algorithm-parallelization/jacobi as
//     the read-only input of both solver variants.
//   - Consumed by github.com/S-W-Leong/algorithm-parallelization/bench for
//     input generation and post-hoc verification.
package linsys
