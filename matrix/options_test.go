// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvqubo/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidatesNaNInf())
}

// TestOptions_LaterSetterWins applies setters in order.
func TestOptions_LaterSetterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidatesNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), nil, matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidatesNaNInf())
}

// TestWithNoValidateNaNInf lets scratch buffers hold non-finite values.
func TestWithNoValidateNaNInf(t *testing.T) {
	d, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, math.Inf(1)))

	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}
