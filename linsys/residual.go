// SPDX-License-Identifier: MIT
// Package linsys: numeric facade over System (matrix-vector product, residual).
// All kernels validate via the central validators and wrap failures with an
// operation tag through linsysErrorf; loop orders are fixed for determinism.

package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the additive identity used to reset accumulators.
const ZeroSum = 0.0

// Operation tags used in wrapped errors.
const (
	opMatVec       = "MatVec"
	opResidualNorm = "ResidualNorm"
	opExact        = "Exact"
)

// linsysErrorf wraps err with an operation tag, preserving the original error via %w.
// Callers keep matching sentinels with errors.Is.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = A·x for a column vector x.
//
// Contract: receiver non-nil; len(x) == N().
// Determinism: fixed i→j loop order, one flat pass per row.
// Complexity: Time O(n²), Space O(n) for y.
func (s *System) MatVec(x []float64) ([]float64, error) {
	// Validate receiver and operand shape.
	if err := ValidateNotNil(s); err != nil {
		return nil, linsysErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, s.n); err != nil {
		return nil, linsysErrorf(opMatVec, err)
	}

	y := make([]float64, s.n) // allocate exactly n outputs

	var i, j, base int // indices and row base offset
	var acc, xv float64
	for i = 0; i < s.n; i++ { // iterate rows deterministically
		acc = ZeroSum             // reset accumulator per row
		base = i * s.n            // compute flat base offset for row i
		for j = 0; j < s.n; j++ { // iterate columns
			xv = x[j]    // read x(j) once per iteration
			if xv != 0 { // micro-optimization: skip zero multiplications
				acc += s.a[base+j] * xv // accumulate a(i,j)*x(j)
			}
		}
		y[i] = acc // store y(i)
	}

	return y, nil
}

// ResidualNorm computes the Euclidean norm ‖A·x − b‖₂ of a candidate solution.
//
// Pure verification: no side effects, never part of a convergence criterion.
// Callers run it after a solve to judge how well the returned iterate
// satisfies the system.
//
// Contract: receiver non-nil; len(x) == N().
// Determinism: residual assembled in fixed row order; the 2-norm is
// delegated to gonum's floats.Norm.
// Complexity: Time O(n²), Space O(n) for the residual vector.
func (s *System) ResidualNorm(x []float64) (float64, error) {
	// MatVec performs the shared validation.
	r, err := s.MatVec(x)
	if err != nil {
		return 0, linsysErrorf(opResidualNorm, err)
	}

	// r ← A·x − b, in place.
	var i int
	for i = 0; i < s.n; i++ {
		r[i] -= s.b[i]
	}

	return floats.Norm(r, 2), nil
}
