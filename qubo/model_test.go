package qubo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvqubo/matrix"
	"github.com/katalvlaran/lvqubo/qubo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCost_FerroPair checks the worked example Q = [[1,-1],[-1,1]].
func TestCost_FerroPair(t *testing.T) {
	m := mustModel(t, [][]float64{{1, -1}, {-1, 1}})

	cases := []struct {
		x    qubo.Assignment
		want float64
	}{
		{qubo.Assignment{0, 0}, 0},
		{qubo.Assignment{0, 1}, 1},
		{qubo.Assignment{1, 0}, 1},
		{qubo.Assignment{1, 1}, 0},
	}
	for _, tc := range cases {
		got, err := m.Cost(tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "x=%s", tc.x)
	}
}

// TestCost_ReferenceProblem checks the reference problem Q = [[1,-2],[-2,4]].
func TestCost_ReferenceProblem(t *testing.T) {
	m := mustModel(t, [][]float64{{1, -2}, {-2, 4}})

	want := map[string]float64{"00": 0, "01": 4, "10": 1, "11": 1}
	for s, c := range want {
		x, err := qubo.ParseBitstring(s)
		require.NoError(t, err)
		got, err := m.Cost(x)
		require.NoError(t, err)
		assert.Equal(t, c, got, "x=%s", s)
	}
}

// TestCost_GeneralMatrixNotSymmetrized uses a strictly upper-triangular Q: the
// full bilinear form counts Q[0][1] once.
func TestCost_GeneralMatrixNotSymmetrized(t *testing.T) {
	m := mustModel(t, [][]float64{{0, 3}, {0, 0}})
	got, err := m.Cost(qubo.Assignment{1, 1})
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

// TestCost_MatchesBruteForce compares Cost against an independent evaluator.
func TestCost_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	rows := randomRows(rng, 6)
	m := mustModel(t, rows)

	for k := uint64(0); k < 1<<6; k++ {
		x := qubo.AssignmentFromIndex(k, 6)
		got, err := m.Cost(x)
		require.NoError(t, err)
		require.InDelta(t, bruteCost(rows, x), got, epsTiny)

		byIndex, err := m.CostOfIndex(k)
		require.NoError(t, err)
		require.Equal(t, got, byIndex, "Cost and CostOfIndex must agree bit for bit")
	}
}

// TestCost_InvalidAssignment rejects wrong lengths and non-binary values.
func TestCost_InvalidAssignment(t *testing.T) {
	m := mustModel(t, [][]float64{{1, 0}, {0, 1}})

	_, err := m.Cost(qubo.Assignment{1})
	require.ErrorIs(t, err, qubo.ErrInvalidAssignment)

	_, err = m.Cost(qubo.Assignment{1, 0, 1})
	require.ErrorIs(t, err, qubo.ErrInvalidAssignment)

	_, err = m.Cost(qubo.Assignment{2, 0})
	require.ErrorIs(t, err, qubo.ErrInvalidAssignment)

	_, err = m.CostOfIndex(4)
	require.ErrorIs(t, err, qubo.ErrInvalidAssignment)
}

// TestNewModel_Invalid covers empty, ragged, non-square and non-finite input.
func TestNewModel_Invalid(t *testing.T) {
	cases := map[string][][]float64{
		"nil":        nil,
		"empty":      {},
		"empty row":  {{}},
		"ragged":     {{1, 2}, {3}},
		"non-square": {{1, 2, 3}, {4, 5, 6}},
		"nan":        {{1, math.NaN()}, {0, 1}},
		"inf":        {{math.Inf(1)}},
	}
	for name, rows := range cases {
		_, err := qubo.NewModel(rows)
		require.ErrorIs(t, err, qubo.ErrInvalidModel, name)
	}

	_, err := qubo.NewModel([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare, "matrix sentinel is wrapped alongside")
}

// TestNewModel_CopiesInput verifies the model is immune to caller mutation.
func TestNewModel_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, -2}, {-2, 4}}
	m := mustModel(t, rows)
	rows[0][0] = 100

	v, err := m.Coefficient(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	exported := m.Rows()
	exported[1][1] = -100
	v, err = m.Coefficient(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestNewModelFromMatrix accepts any matrix.Matrix and rejects non-square input.
func TestNewModelFromMatrix(t *testing.T) {
	d, err := matrix.FromRows([][]float64{{1, -2}, {-2, 4}})
	require.NoError(t, err)
	m, err := qubo.NewModelFromMatrix(d)
	require.NoError(t, err)
	require.Equal(t, 2, m.N())

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = qubo.NewModelFromMatrix(rect)
	require.ErrorIs(t, err, qubo.ErrInvalidModel)

	_, err = qubo.NewModelFromMatrix(nil)
	require.ErrorIs(t, err, qubo.ErrInvalidModel)
}

// TestModel_EquivalentForms checks that Symmetrized and UpperTriangular keep
// every cost.
func TestModel_EquivalentForms(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	m := mustModel(t, randomRows(rng, 5))

	sym, err := m.Symmetrized()
	require.NoError(t, err)
	up, err := m.UpperTriangular()
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSymmetric(sym.Matrix(), 0))
	for k := uint64(0); k < 1<<5; k++ {
		want, _ := m.CostOfIndex(k)
		got, _ := sym.CostOfIndex(k)
		assert.InDelta(t, want, got, epsTiny)
		got, _ = up.CostOfIndex(k)
		assert.InDelta(t, want, got, epsTiny)
	}

	lower, err := up.Coefficient(3, 1)
	require.NoError(t, err)
	require.Zero(t, lower)
}
