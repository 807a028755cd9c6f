// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linsys
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package linsys

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linsys: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned bare from validators; the
// public facade wraps them with an operation tag via fmt.Errorf("tag: %w", ErrX)
// so callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates a requested system size n <= 0, or a
	// ragged/empty coefficient matrix at ingestion.
	ErrInvalidDimensions = errors.New("linsys: dimensions must be > 0")

	// ErrDimensionMismatch indicates a vector whose length does not match the
	// system size n (right-hand side, candidate solution, initial guess).
	ErrDimensionMismatch = errors.New("linsys: dimension mismatch")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// [0, n). Public indexers (At) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("linsys: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the ingestion policy (NewSystem rejects non-finite input).
	ErrNaNInf = errors.New("linsys: NaN or Inf encountered")

	// ErrNilSystem indicates that a nil *System (receiver or argument) was used.
	ErrNilSystem = errors.New("linsys: nil system")

	// ErrSingular is returned by Exact when the LU factorization reports a
	// singular or numerically unsolvable coefficient matrix.
	ErrSingular = errors.New("linsys: singular matrix")
)
