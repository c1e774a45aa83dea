// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points used by the QUBO packages.
//   - Keep loop orders fixed (i→j) so results are reproducible bit for bit.
//
// Determinism & Policy:
//   - Facades never reorder floating-point accumulation.
//   - Validation is centralized in validators.go; facades only compose.

package matrix

import "math"

// FromRows builds a Dense from row slices, copying the data.
//
// Contract:
//   - rows must be non-empty and rectangular (every row has len(rows[0]) > 0).
//   - under the default finite policy NaN/±Inf are rejected.
//
// Errors: ErrInvalidDimensions (no rows or empty first row), ErrDimensionMismatch
// (ragged rows), ErrNaNInf.
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf("FromRows", ErrDimensionMismatch) // ragged input
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf("FromRows", err) // numeric policy violation
			}
		}
	}

	return m, nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
// The quadratic form xᵀ·m·x is unchanged, which is why the cost model offers it.
// Complexity: O(n²).
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	n := m.Rows()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			out.data[i*n+j] = (aij + aji) / 2
		}
	}

	return out, nil
}

// FoldUpper returns the upper-triangular form U of a square m:
//
//	U[i,i] = m[i,i],  U[i,j] = m[i,j] + m[j,i] (i<j),  U[j,i] = 0.
//
// U and m define the same quadratic form over binary or real vectors.
// Complexity: O(n²).
func FoldUpper(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("FoldUpper", err)
	}
	n := m.Rows()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("FoldUpper", err)
	}
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		aij, _ = m.At(i, i)
		out.data[i*n+i] = aij
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			out.data[i*n+j] = aij + aji
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close. Negative tolerances are normalized to |tol|.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf("AllClose", ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.IsNaN(av) || math.IsNaN(bv) {
				return false, nil
			}
			if av == bv { // covers equal infinities
				continue
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
