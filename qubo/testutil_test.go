// Package qubo_test provides lightweight helpers shared across *_test.go files.
package qubo_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the deterministic seed for random instances.
	seedDet = int64(7)

	// epsTiny is the tolerance for costs computed along different summation orders.
	epsTiny = 1e-9
)

// randomRows returns an n×n matrix with integer-valued coefficients in
// [-5, 5], general (non-symmetric) on purpose.
func randomRows(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return rows
}

// mustModel builds a model or fails the test.
func mustModel(t *testing.T, rows [][]float64) *qubo.Model {
	t.Helper()
	m, err := qubo.NewModel(rows)
	require.NoError(t, err)

	return m
}

// bruteCost evaluates xᵀQx with plain loops, independent of the package.
func bruteCost(rows [][]float64, x qubo.Assignment) float64 {
	var sum float64
	for i := range rows {
		for j := range rows[i] {
			sum += rows[i][j] * float64(x[i]) * float64(x[j])
		}
	}

	return sum
}
