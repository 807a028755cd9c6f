// SPDX-License-Identifier: MIT
// Package linsys: central validators shared by constructors and kernels.
// Validators return bare sentinels; facades add operation context on top.

package linsys

import (
	"fmt"
	"math"
)

// validatorErrorf wraps err with a validator tag, preserving errors.Is matching.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the system reference is non-nil.
// Returns ErrNilSystem otherwise.
// Complexity: O(1).
func ValidateNotNil(s *System) error {
	if s == nil {
		return ErrNilSystem
	}
	return nil
}

// ValidateVecLen ensures len(x) matches the required size n.
// Returns ErrDimensionMismatch with both lengths in the message otherwise.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("len=%d want=%d", len(x), n), ErrDimensionMismatch)
	}
	return nil
}

// ValidateFinite ensures every element of x is a finite float64.
// Returns ErrNaNInf naming the first offending index otherwise.
// Complexity: O(len(x)).
func ValidateFinite(x []float64) error {
	var i int
	var v float64
	for i, v = range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("index %d", i), ErrNaNInf)
		}
	}
	return nil
}
