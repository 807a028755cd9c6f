// Package linsys provides dense linear systems Ax = b for iterative solvers.
// System is a concrete, row-major representation storing the coefficient
// matrix in a flat slice for performance and cache friendliness. A and b are
// immutable after construction: the type exposes no mutators, so one System
// can be shared by any number of concurrent solver runs without locking.
package linsys

import (
	"fmt"
	"strings"
)

// System is a dense linear system Ax = b of size n.
// a holds the n×n coefficient matrix in row-major order (length n*n);
// b holds the right-hand side (length n).
type System struct {
	n int       // system size
	a []float64 // flat row-major coefficients, length == n*n
	b []float64 // right-hand side, length == n
}

// NewSystem builds a System from a row-slice matrix and a right-hand side.
// Stage 1 (Validate): non-empty square a, len(b) == n, all values finite.
// Stage 2 (Prepare): flatten rows into contiguous storage.
// Stage 3 (Finalize): return the immutable System.
// The input slices are copied; callers may reuse them freely afterwards.
// Complexity: O(n²) time and memory.
func NewSystem(a [][]float64, b []float64) (*System, error) {
	n := len(a)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, err
	}

	// Flatten row by row, checking shape and the finite-value policy as we go.
	flat := make([]float64, 0, n*n)
	var i int
	for i = 0; i < n; i++ {
		if len(a[i]) != n {
			return nil, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch)
		}
		if err := ValidateFinite(a[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		flat = append(flat, a[i]...)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, fmt.Errorf("rhs: %w", err)
	}

	// Copy b so later caller writes cannot reach our storage.
	rhs := make([]float64, n)
	copy(rhs, b)

	return &System{n: n, a: flat, b: rhs}, nil
}

// N returns the system size.
// Complexity: O(1).
func (s *System) N() int {
	return s.n // return stored size
}

// At retrieves coefficient A[i][j].
// Stage 1 (Validate): bounds check both indices.
// Stage 2 (Execute): read from flat storage.
// Complexity: O(1).
func (s *System) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return s.a[i*s.n+j], nil
}

// Row returns a zero-copy view of row i of the coefficient matrix.
// The view aliases internal storage: callers MUST NOT mutate it.
// Out-of-range i panics via the slice bounds check; hot kernels are expected
// to iterate i over [0, N()) and need no per-element error handling.
// Complexity: O(1).
func (s *System) Row(i int) []float64 {
	return s.a[i*s.n : (i+1)*s.n]
}

// B returns a zero-copy view of the right-hand side.
// Same aliasing contract as Row: read-only for callers.
// Complexity: O(1).
func (s *System) B() []float64 {
	return s.b
}

// Clone returns a deep copy with independent storage.
// Complexity: O(n²) time and memory.
func (s *System) Clone() *System {
	ca := make([]float64, len(s.a))
	copy(ca, s.a)
	cb := make([]float64, len(s.b))
	copy(cb, s.b)

	return &System{n: s.n, a: ca, b: cb}
}

// String implements fmt.Stringer for easy debugging of small systems.
// Each line shows one row of A followed by the matching b entry.
// Complexity: O(n²) for string construction.
func (s *System) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < s.n; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < s.n; j++ { // iterate over columns
			fmt.Fprintf(&sb, "%g", s.a[i*s.n+j])
			if j < s.n-1 {
				sb.WriteString(", ")
			}
		}
		fmt.Fprintf(&sb, " | %g]\n", s.b[i])
	}

	return sb.String()
}
