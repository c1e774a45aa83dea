package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

// DefaultCompareTolerance absorbs floating-point noise of dense backends.
const DefaultCompareTolerance = 1e-6

// Comparison lines up an eigensolver Result with the exact enumeration.
type Comparison struct {
	// ExactCost is the enumerated minimum cost.
	ExactCost float64 `json:"exact_cost"`
	// AdapterCost is Eigenvalue + Offset, the eigensolver's minimum on the
	// QUBO cost scale.
	AdapterCost float64 `json:"adapter_cost"`
	// MeasuredCost is the QUBO cost of the measured bitstring.
	MeasuredCost float64 `json:"measured_cost"`

	EigenvalueAgrees   bool `json:"eigenvalue_agrees"`
	MeasurementOptimal bool `json:"measurement_optimal"`
	// SameBitstring is true when the measurement equals the exact solver's
	// tie-broken optimum. Degenerate problems can be optimal without it.
	SameBitstring bool `json:"same_bitstring"`
}

// Agrees reports whether both the eigenvalue and the measured state match
// the exact minimum.
func (c Comparison) Agrees() bool { return c.EigenvalueAgrees && c.MeasurementOptimal }

// Compare checks res against the exact outcome of m, within tol.
//
// Any measured bitstring whose cost ties the minimum counts as optimal.
// Errors: ErrInvalidHamiltonian when h does not have m's qubit count,
// ErrInvalidMeasurement when the bitstring is not an assignment of m.
func Compare(m *qubo.Model, out qubo.Outcome, h ising.Hamiltonian, res Result, tol float64) (Comparison, error) {
	if m == nil {
		return Comparison{}, eigenErrorf("Compare", qubo.ErrInvalidModel)
	}
	if h.NumQubits != m.N() {
		return Comparison{}, fmt.Errorf("Compare: %w: %d qubits for %d variables", ErrInvalidHamiltonian, h.NumQubits, m.N())
	}
	x, err := qubo.ParseBitstring(res.Best.Bitstring)
	if err != nil {
		return Comparison{}, fmt.Errorf("Compare: %w: %w", ErrInvalidMeasurement, err)
	}
	measured, err := m.Cost(x)
	if err != nil {
		return Comparison{}, fmt.Errorf("Compare: %w: %w", ErrInvalidMeasurement, err)
	}
	tol = math.Abs(tol)

	c := Comparison{
		ExactCost:    out.MinCost,
		AdapterCost:  res.Eigenvalue + h.Offset,
		MeasuredCost: measured,
	}
	c.EigenvalueAgrees = math.Abs(c.AdapterCost-c.ExactCost) <= tol
	c.MeasurementOptimal = math.Abs(c.MeasuredCost-c.ExactCost) <= tol
	c.SameBitstring = x.Equal(out.Best)

	return c, nil
}
