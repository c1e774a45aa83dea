package eigen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

var errTransient = errors.New("backend: temporarily unavailable")

// mockSolver is a scripted Eigensolver.
type mockSolver struct {
	mock.Mock
}

func (m *mockSolver) MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg eigen.Config) (eigen.Result, error) {
	args := m.Called(ctx, h, cfg)

	return args.Get(0).(eigen.Result), args.Error(1)
}

func (m *mockSolver) expect(res eigen.Result, err error) *mock.Call {
	return m.On("MinimumEigenvalue", mock.Anything, mock.Anything, mock.Anything).Return(res, err)
}

// encode builds a model and its Hamiltonian.
func encode(t *testing.T, rows [][]float64) (*qubo.Model, ising.Hamiltonian) {
	t.Helper()
	m, err := qubo.NewModel(rows)
	require.NoError(t, err)
	h, err := ising.Encode(m)
	require.NoError(t, err)

	return m, h
}
