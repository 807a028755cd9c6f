// SPDX-License-Identifier: MIT
// Package linsys: deterministic generation of solver-friendly systems.

package linsys

import (
	"math"
	"math/rand"
)

// Generator value ranges. Off-diagonal coefficients land in [0, 0.9] with a
// 0.1 step, the diagonal exceeds its row sum by an integer margin in [1, 10],
// and right-hand side entries land in [0, 9.9].
const (
	offDiagStates = 10  // rand states for one off-diagonal cell
	diagStates    = 10  // rand states for the dominance margin
	rhsStates     = 100 // rand states for one rhs entry
	valueScale    = 10.0
)

// NewDominant generates a strictly diagonally dominant System of size n from
// a deterministic seed.
//
// Construction, row by row:
//  1. every off-diagonal A[i][j] is drawn uniformly from {0.0, 0.1, ..., 0.9}
//     in ascending j order, accumulating the row sum of magnitudes;
//  2. the diagonal is set to rowSum + m with an integer margin m in [1, 10],
//     so |A[i][i]| ≥ Σ_{j≠i}|A[i][j]| + 1 holds by construction;
//  3. b[i] is drawn uniformly from {0.0, 0.1, ..., 9.9}.
//
// Determinism: the fill order is fixed, so a given (n, seed) pair yields a
// bit-identical System on every run and platform. Solvers never validate
// dominance themselves; this constructor is how callers uphold that
// precondition.
//
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) time and memory.
func NewDominant(n int, seed int64) (*System, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	rng := rand.New(rand.NewSource(seed))
	a := make([]float64, n*n)
	b := make([]float64, n)

	var i, j int
	var rowSum float64
	for i = 0; i < n; i++ {
		rowSum = 0.0
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal is assigned after the row sum is known
			}
			v := float64(rng.Intn(offDiagStates)) / valueScale
			a[i*n+j] = v
			rowSum += math.Abs(v)
		}
		// Dominant diagonal: row sum plus a margin of at least 1.
		a[i*n+i] = rowSum + float64(rng.Intn(diagStates)+1)
		b[i] = float64(rng.Intn(rhsStates)) / valueScale
	}

	return &System{n: n, a: a, b: b}, nil
}

// IsDominant reports whether the coefficient matrix satisfies strict diagonal
// dominance with margin eps: |A[i][i]| ≥ Σ_{j≠i}|A[i][j]| + eps for every row.
// Diagnostic only: solvers never call it, generated systems must pass it.
// Complexity: O(n²).
func (s *System) IsDominant(eps float64) bool {
	var i, j int
	var offSum float64
	for i = 0; i < s.n; i++ {
		offSum = 0.0
		for j = 0; j < s.n; j++ {
			if j != i {
				offSum += math.Abs(s.a[i*s.n+j])
			}
		}
		if math.Abs(s.a[i*s.n+i]) < offSum+eps {
			return false
		}
	}

	return true
}
