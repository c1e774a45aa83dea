package qubo

import (
	"fmt"

	"github.com/katalvlaran/lvqubo/matrix"
)

// Model is an immutable QUBO cost model over n binary variables.
//
// The coefficient matrix is copied on construction; neither the caller's rows
// nor later calls can mutate it. A *Model is safe for concurrent readers.
type Model struct {
	n int
	q *matrix.Dense // canonical storage, exposed only through clones
	// rows mirrors q for the hot loop; never handed out.
	rows [][]float64
}

// NewModel builds a Model from a square, row-major coefficient matrix.
//
// Errors: ErrInvalidModel when rows is empty, ragged, non-square, or holds
// NaN/±Inf (the underlying matrix sentinel is wrapped alongside).
// Complexity: O(n²).
func NewModel(rows [][]float64) (*Model, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewModel: %w: empty matrix", ErrInvalidModel)
	}
	d, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewModel: %w: %w", ErrInvalidModel, err)
	}

	return newModelFromDense(d)
}

// NewModelFromMatrix builds a Model from any matrix.Matrix implementation.
// The input is copied element by element; later mutation of m has no effect.
func NewModelFromMatrix(m matrix.Matrix) (*Model, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("NewModelFromMatrix: %w: %w", ErrInvalidModel, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("NewModelFromMatrix: %w: %w", ErrInvalidModel, err)
	}
	n := m.Rows()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewModelFromMatrix: %w: %w", ErrInvalidModel, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // indices valid after ValidateSquareNonNil
			if err = d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewModelFromMatrix: %w: %w", ErrInvalidModel, err)
			}
		}
	}

	return newModelFromDense(d)
}

// newModelFromDense takes ownership of d after checking it is square.
func newModelFromDense(d *matrix.Dense) (*Model, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return &Model{n: d.Rows(), q: d, rows: d.ToRows()}, nil
}

// validModel is the common guard of every operation taking a *Model.
func validModel(m *Model) error {
	if m == nil || m.n <= 0 {
		return ErrInvalidModel
	}

	return nil
}

// N returns the number of binary variables.
func (m *Model) N() int { return m.n }

// Coefficient returns Q[i][j].
func (m *Model) Coefficient(i, j int) (float64, error) {
	return m.q.At(i, j)
}

// Matrix returns a deep copy of Q.
func (m *Model) Matrix() *matrix.Dense {
	return m.q.Clone().(*matrix.Dense)
}

// Rows returns a deep copy of Q as row slices.
func (m *Model) Rows() [][]float64 { return m.q.ToRows() }

// Cost evaluates xᵀQx for a validated assignment.
//
// Errors: ErrInvalidAssignment on wrong length or values outside {0,1}.
// Complexity: O(n + k²) where k is the number of ones in x.
func (m *Model) Cost(x Assignment) (float64, error) {
	if err := validModel(m); err != nil {
		return 0, quboErrorf("Cost", err)
	}
	if err := x.Validate(m.n); err != nil {
		return 0, quboErrorf("Cost", err)
	}
	ones := make([]int, 0, m.n)
	for i, v := range x {
		if v == 1 {
			ones = append(ones, i)
		}
	}

	return m.costOfOnes(ones), nil
}

// CostOfIndex evaluates the assignment with enumeration index k.
// Errors: ErrInvalidAssignment when k ≥ 2ⁿ.
func (m *Model) CostOfIndex(k uint64) (float64, error) {
	if err := validModel(m); err != nil {
		return 0, quboErrorf("CostOfIndex", err)
	}
	if m.n < 64 && k>>uint(m.n) != 0 {
		return 0, fmt.Errorf("CostOfIndex: %w: index %d out of range for n=%d", ErrInvalidAssignment, k, m.n)
	}

	return m.costOfIndex(k, make([]int, 0, m.n)), nil
}

// costOfIndex is the allocation-free hot path used by Solve; buf is reused
// scratch space with capacity ≥ n.
func (m *Model) costOfIndex(k uint64, buf []int) float64 {
	ones := buf[:0]
	var i int
	for i = 0; i < m.n; i++ {
		if (k>>uint(m.n-1-i))&1 == 1 {
			ones = append(ones, i)
		}
	}

	return m.costOfOnes(ones)
}

// costOfOnes sums Q[i][j] over ordered pairs of set variables.
// Cost and costOfIndex share it so both produce bit-identical results.
func (m *Model) costOfOnes(ones []int) float64 {
	var sum float64
	for _, i := range ones {
		row := m.rows[i]
		for _, j := range ones {
			sum += row[j]
		}
	}

	return sum
}

// Symmetrized returns a new Model with coefficients (Q+Qᵀ)/2.
// Costs are unchanged up to floating-point rounding.
func (m *Model) Symmetrized() (*Model, error) {
	if err := validModel(m); err != nil {
		return nil, quboErrorf("Symmetrized", err)
	}
	d, err := matrix.Symmetrize(m.q)
	if err != nil {
		return nil, quboErrorf("Symmetrized", err)
	}

	return newModelFromDense(d)
}

// UpperTriangular returns a new Model holding the folded upper-triangular
// form of Q (off-diagonal pairs summed above the diagonal).
func (m *Model) UpperTriangular() (*Model, error) {
	if err := validModel(m); err != nil {
		return nil, quboErrorf("UpperTriangular", err)
	}
	d, err := matrix.FoldUpper(m.q)
	if err != nil {
		return nil, quboErrorf("UpperTriangular", err)
	}

	return newModelFromDense(d)
}

// String renders Q for diagnostics.
func (m *Model) String() string {
	if m == nil || m.q == nil {
		return "<nil>"
	}

	return m.q.String()
}
