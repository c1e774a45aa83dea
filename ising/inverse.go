package ising

import "github.com/katalvlaran/lvqubo/qubo"

// ToModel maps the Hamiltonian back to an upper-triangular QUBO model under
// z_i = 1 − 2x_i:
//
//	Q[i][i] = −2h_i − 2·Σ_j J_ij,   Q[i][j] = 4J_ij (i < j)
//
// and returns the constant c such that for every assignment x
//
//	Energy(z) + Offset = model.Cost(x) + c.
//
// For a Hamiltonian produced by Encode, c is 0 up to rounding and the model
// equals the upper-triangular fold of the source.
func (h Hamiltonian) ToModel() (*qubo.Model, float64, error) {
	if err := h.Validate(); err != nil {
		return nil, 0, isingErrorf("ToModel", err)
	}
	n := h.NumQubits
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	constant := h.Offset
	for _, t := range h.Terms {
		constant += t.Coeff
		if t.Linear() {
			rows[t.I][t.I] -= 2 * t.Coeff
			continue
		}
		rows[t.I][t.J] += 4 * t.Coeff
		rows[t.I][t.I] -= 2 * t.Coeff
		rows[t.J][t.J] -= 2 * t.Coeff
	}

	m, err := qubo.NewModel(rows)
	if err != nil {
		return nil, 0, isingErrorf("ToModel", err)
	}

	return m, constant, nil
}
