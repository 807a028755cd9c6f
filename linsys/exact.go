// SPDX-License-Identifier: MIT
// Package linsys: direct reference solution for verification.

package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Exact solves A·x = b directly through gonum's dense LU path and returns a
// fresh solution vector. It is the verification oracle for the iterative
// solvers: benchmarks and tests compare an iterate against Exact to measure
// forward error, it never participates in the iteration itself.
//
// Returns ErrSingular (wrapping gonum's condition report) when the
// coefficient matrix is singular or too ill-conditioned to solve.
// Complexity: Time O(n³), Space O(n²) for the factorization copy.
func (s *System) Exact() ([]float64, error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, linsysErrorf(opExact, err)
	}

	// gonum adopts the backing slices it is given, so hand it copies to keep
	// the System immutable.
	ca := make([]float64, len(s.a))
	copy(ca, s.a)
	cb := make([]float64, len(s.b))
	copy(cb, s.b)

	var x mat.VecDense
	if err := x.SolveVec(mat.NewDense(s.n, s.n, ca), mat.NewVecDense(s.n, cb)); err != nil {
		return nil, linsysErrorf(opExact, fmt.Errorf("%w: %v", ErrSingular, err))
	}

	out := make([]float64, s.n)
	var i int
	for i = 0; i < s.n; i++ {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
