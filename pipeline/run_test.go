package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/pipeline"
	"github.com/katalvlaran/lvqubo/qubo"
)

type mockSolver struct {
	mock.Mock
}

func (m *mockSolver) MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg eigen.Config) (eigen.Result, error) {
	args := m.Called(ctx, h, cfg)

	return args.Get(0).(eigen.Result), args.Error(1)
}

func referenceModel(t *testing.T) *qubo.Model {
	t.Helper()
	m, err := qubo.NewModel([][]float64{{1, -2}, {-2, 4}})
	require.NoError(t, err)

	return m
}

// TestRun_DenseBackendAgrees runs both paths end to end.
func TestRun_DenseBackendAgrees(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Adapter.Retries = 2
	cfg.Adapter.BreakerTrips = 3
	solver, err := cfg.BuildEigensolver()
	require.NoError(t, err)

	var logs bytes.Buffer
	rep, err := pipeline.Run(context.Background(), referenceModel(t), cfg, solver, pipeline.NewJSONLogger(&logs, -4))
	require.NoError(t, err)

	require.Equal(t, "00", rep.Outcome.Best.String())
	require.NotNil(t, rep.Comparison)
	require.True(t, rep.Comparison.Agrees())
	require.True(t, rep.Comparison.SameBitstring)
	require.Len(t, rep.Landscape, 4)
	for _, row := range rep.Landscape {
		require.InDelta(t, row.Cost, row.Energy, 1e-9, row.Bitstring)
	}

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		messages = append(messages, rec["msg"].(string))
	}
	require.Equal(t, []string{"solve completed", "encode completed", "eigensolver completed", "paths agree"}, messages)
}

// TestRun_ReportsDisagreement: a wrong backend answer is reported, not an error.
func TestRun_ReportsDisagreement(t *testing.T) {
	backend := new(mockSolver)
	backend.On("MinimumEigenvalue", mock.Anything, mock.Anything, mock.Anything).
		Return(eigen.Result{Eigenvalue: 1, Best: eigen.Measurement{Bitstring: "01", Probability: 0.9}}, nil)

	var logs bytes.Buffer
	rep, err := pipeline.Run(context.Background(), referenceModel(t), pipeline.DefaultConfig(), backend, pipeline.NewTextLogger(&logs, 0))
	require.NoError(t, err)
	require.False(t, rep.Comparison.Agrees())
	assert.Contains(t, logs.String(), "paths disagree")
	backend.AssertExpectations(t)
}

// TestRun_BackendError keeps the exact result and records the failure.
func TestRun_BackendError(t *testing.T) {
	boom := errors.New("backend down")
	backend := new(mockSolver)
	backend.On("MinimumEigenvalue", mock.Anything, mock.Anything, mock.Anything).Return(eigen.Result{}, boom)

	rep, err := pipeline.Run(context.Background(), referenceModel(t), pipeline.DefaultConfig(), backend, nil)
	require.NoError(t, err)
	require.ErrorIs(t, rep.EigenErr, boom)
	require.Nil(t, rep.Eigen)
	require.Nil(t, rep.Comparison)
	require.Equal(t, "00", rep.Outcome.Best.String())
	require.Len(t, rep.Landscape, 4)
}

// TestRun_ModelAboveQubitCap: an 11-variable model is solved exactly even
// though the default dense backend stops at 10 qubits.
func TestRun_ModelAboveQubitCap(t *testing.T) {
	const n = 11
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}
	rows[n-1][n-1] = -1
	m, err := qubo.NewModel(rows)
	require.NoError(t, err)

	cfg := pipeline.DefaultConfig()
	solver, err := cfg.BuildEigensolver()
	require.NoError(t, err)

	rep, err := pipeline.Run(context.Background(), m, cfg, solver, nil)
	require.NoError(t, err)
	require.ErrorIs(t, rep.EigenErr, eigen.ErrTooManyQubits)
	require.Equal(t, "00000000001", rep.Outcome.Best.String())
	require.Equal(t, -1.0, rep.Outcome.MinCost)
	require.Equal(t, n, rep.Hamiltonian.NumQubits)
	require.Nil(t, rep.Comparison)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	require.Contains(t, buf.String(), "too many qubits")
	require.Contains(t, buf.String(), "00000000001")
}

// TestRun_Canceled aborts when the context is done.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Run(ctx, referenceModel(t), pipeline.DefaultConfig(), eigen.NewDenseSolver(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_WithoutSolverOrTable keeps only the exact path.
func TestRun_WithoutSolverOrTable(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Solver.RecordTable = false
	cfg.Solver.Workers = 0

	rep, err := pipeline.Run(context.Background(), referenceModel(t), cfg, nil, pipeline.NoopLogger())
	require.NoError(t, err)
	require.Nil(t, rep.Eigen)
	require.Nil(t, rep.Comparison)
	require.Nil(t, rep.Landscape)
	require.Equal(t, 0.0, rep.Outcome.MinCost)
	require.Equal(t, 2, rep.Hamiltonian.NumQubits)
}

// TestRun_Errors covers invalid inputs.
func TestRun_Errors(t *testing.T) {
	_, err := pipeline.Run(context.Background(), nil, pipeline.DefaultConfig(), nil, nil)
	require.ErrorIs(t, err, qubo.ErrInvalidModel)

	cfg := pipeline.DefaultConfig()
	cfg.Solver.MaxVariables = 1
	_, err = pipeline.Run(context.Background(), referenceModel(t), cfg, nil, nil)
	require.ErrorIs(t, err, qubo.ErrSearchSpaceTooLarge)

	cfg = pipeline.DefaultConfig()
	cfg.Log.Format = "xml"
	_, err = pipeline.Run(context.Background(), referenceModel(t), cfg, nil, nil)
	require.ErrorIs(t, err, pipeline.ErrInvalidConfig)
}
