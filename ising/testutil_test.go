package ising_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/stretchr/testify/require"
)

const (
	seedDet = 11
	epsTiny = 1e-9
)

// randomModel draws an asymmetric integer matrix in [-5, 5].
func randomModel(t *testing.T, rng *rand.Rand, n int) *qubo.Model {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(11) - 5)
		}
	}
	m, err := qubo.NewModel(rows)
	require.NoError(t, err)

	return m
}

func mustModel(t *testing.T, rows [][]float64) *qubo.Model {
	t.Helper()
	m, err := qubo.NewModel(rows)
	require.NoError(t, err)

	return m
}
