// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); ToRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; At/Set wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the finite policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// ToRows exports the matrix as freshly allocated row slices.
// The result shares no memory with m; hot loops in other packages index it
// directly instead of paying the At bounds check per element.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ { // fixed row order
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
