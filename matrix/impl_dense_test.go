// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvqubo/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestSetNaNPolicy: the finite policy is on by default and can be disabled.
func TestSetNaNPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestCloneAndToRowsIndependence: neither Clone nor ToRows share storage.
func TestCloneAndToRowsIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 9))
	rows := m.ToRows()
	rows[1][1] = -7

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	v, _ = m.At(1, 1)
	require.Equal(t, 4.0, v)
	v, _ = clone.At(0, 0)
	require.Equal(t, 9.0, v)
}

// TestDenseString renders one bracketed line per row.
func TestDenseString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, -0.5}, {0, 2}})
	require.NoError(t, err)
	require.Equal(t, "[1, -0.5]\n[0, 2]\n", m.String())

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
}
