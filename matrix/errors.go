// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is. No function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// or a ragged row set passed to FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with the facade tag that detected it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
