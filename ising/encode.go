package ising

import (
	"math"

	"github.com/katalvlaran/lvqubo/qubo"
)

// Encode rewrites m as an Ising Hamiltonian under x_i = (1 − z_i)/2.
//
// The full bilinear form is honored: asymmetric matrices encode through
// W_ij = Q[i][j] + Q[j][i], so Q, its symmetrization and its upper-triangular
// fold all produce the same Hamiltonian up to rounding.
//
// Errors: ErrInvalidModel when m is nil or empty.
// Complexity: O(n²) time, at most n + n(n−1)/2 terms.
func Encode(m *qubo.Model, opts ...Option) (Hamiltonian, error) {
	if m == nil || m.N() <= 0 {
		return Hamiltonian{}, isingErrorf("Encode", ErrInvalidModel)
	}
	o := gatherOptions(opts...)
	q := m.Rows()
	n := m.N()

	var (
		i, j   int
		w      float64
		offset float64
	)
	field := make([]float64, n)
	for i = 0; i < n; i++ {
		field[i] = q[i][i]
		offset += q[i][i] / 2
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = q[i][j] + q[j][i]
			field[i] += w / 2
			field[j] += w / 2
			offset += w / 4
		}
	}

	terms := make([]Term, 0, n)
	for i = 0; i < n; i++ {
		terms = o.appendTerm(terms, Term{I: i, J: i, Coeff: -field[i] / 2})
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			terms = o.appendTerm(terms, Term{I: i, J: j, Coeff: (q[i][j] + q[j][i]) / 4})
		}
	}

	return Hamiltonian{NumQubits: n, Terms: terms, Offset: offset}, nil
}

// appendTerm applies the pruning policy.
func (o Options) appendTerm(terms []Term, t Term) []Term {
	if !o.KeepZeros && math.Abs(t.Coeff) <= o.Tolerance {
		return terms
	}

	return append(terms, t)
}
