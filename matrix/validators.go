// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep facades minimal by delegating shape/nil/finite/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import "math"

// zeroTol is the lower bound for user supplied tolerances.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error { return matrixErrorf(tag, err) }

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
// Assumes m is non-nil; use ValidateSquareNonNil otherwise.
// Errors: ErrNonSquare, ErrInvalidDimensions. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf element.
// Errors: ErrNilMatrix, ErrNaNInf. Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation. A negative tol is treated as |tol|.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < zeroTol {
		tol = -tol
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ { // fixed row loop
		for j = i + 1; j < n; j++ { // upper triangle only
			aij, _ = m.At(i, j) // indices valid after shape validation
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
