package eigen_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

// TestDenseSolver_ReferenceProblem: unique optimum 00 at cost 0.
func TestDenseSolver_ReferenceProblem(t *testing.T) {
	m, h := encode(t, [][]float64{{1, -2}, {-2, 4}})
	res, err := eigen.NewDenseSolver().MinimumEigenvalue(context.Background(), h, eigen.DefaultConfig())
	require.NoError(t, err)
	require.InDelta(t, -1.5, res.Eigenvalue, 1e-9)
	require.Equal(t, "00", res.Best.Bitstring)
	require.InDelta(t, 1, res.Best.Probability, 1e-9)
	require.Equal(t, eigen.BackendDense, res.Backend)

	out, _, err := qubo.Solve(m)
	require.NoError(t, err)
	cmp, err := eigen.Compare(m, out, h, res, eigen.DefaultCompareTolerance)
	require.NoError(t, err)
	require.True(t, cmp.Agrees())
	require.True(t, cmp.SameBitstring)
}

// TestDenseSolver_Degenerate: either ground state of the ferro pair is fine.
func TestDenseSolver_Degenerate(t *testing.T) {
	m, h := encode(t, [][]float64{{1, -1}, {-1, 1}})
	res, err := eigen.NewDenseSolver().MinimumEigenvalue(context.Background(), h, eigen.DefaultConfig())
	require.NoError(t, err)
	require.InDelta(t, -0.5, res.Eigenvalue, 1e-9)
	require.Contains(t, []string{"00", "11"}, res.Best.Bitstring)

	out, _, err := qubo.Solve(m)
	require.NoError(t, err)
	cmp, err := eigen.Compare(m, out, h, res, eigen.DefaultCompareTolerance)
	require.NoError(t, err)
	require.True(t, cmp.Agrees())
}

// TestDenseSolver_AgreesWithEnumeration on random models.
func TestDenseSolver_AgreesWithEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 1; n <= 6; n++ {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = float64(rng.Intn(11) - 5)
			}
		}
		m, h := encode(t, rows)
		out, _, err := qubo.Solve(m)
		require.NoError(t, err)

		res, err := eigen.NewDenseSolver().MinimumEigenvalue(context.Background(), h, eigen.DefaultConfig())
		require.NoError(t, err)
		cmp, err := eigen.Compare(m, out, h, res, eigen.DefaultCompareTolerance)
		require.NoError(t, err)
		require.True(t, cmp.Agrees(), "n=%d %+v", n, cmp)
	}
}

// TestDenseSolver_Shots samples deterministically per seed.
func TestDenseSolver_Shots(t *testing.T) {
	_, h := encode(t, [][]float64{{1, -2}, {-2, 4}})
	cfg := eigen.DefaultConfig()
	cfg.Shots = 256
	cfg.Seed = 42

	a, err := eigen.NewDenseSolver().MinimumEigenvalue(context.Background(), h, cfg)
	require.NoError(t, err)
	b, err := eigen.NewDenseSolver().MinimumEigenvalue(context.Background(), h, cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, "00", a.Best.Bitstring)
	require.InDelta(t, 1, a.Best.Probability, 1e-9)
}

// TestDenseSolver_HardCap: a larger MaxQubits does not lift MaxDenseQubits.
func TestDenseSolver_HardCap(t *testing.T) {
	n := eigen.MaxDenseQubits + 1
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}
	_, h := encode(t, rows)

	cfg := eigen.DefaultConfig()
	cfg.MaxQubits = n + 5
	_, err := eigen.NewDenseSolver().MinimumEigenvalue(context.Background(), h, cfg)
	require.ErrorIs(t, err, eigen.ErrTooManyQubits)
}

// TestDenseSolver_Errors covers the caps, validation and cancellation.
func TestDenseSolver_Errors(t *testing.T) {
	s := eigen.NewDenseSolver()
	ctx := context.Background()
	_, h := encode(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	cfg := eigen.DefaultConfig()
	cfg.MaxQubits = 2
	_, err := s.MinimumEigenvalue(ctx, h, cfg)
	require.ErrorIs(t, err, eigen.ErrTooManyQubits)

	cfg = eigen.DefaultConfig()
	cfg.Shots = -1
	_, err = s.MinimumEigenvalue(ctx, h, cfg)
	require.ErrorIs(t, err, eigen.ErrInvalidConfig)

	_, err = s.MinimumEigenvalue(ctx, ising.Hamiltonian{}, eigen.DefaultConfig())
	require.ErrorIs(t, err, eigen.ErrInvalidHamiltonian)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.MinimumEigenvalue(cancelled, h, eigen.DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
}
