package ising

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Term is one weighted Pauli product. I == J is the linear term Z_I; I < J is
// the pairwise term Z_I·Z_J.
type Term struct {
	I, J  int
	Coeff float64
}

// Linear reports whether t acts on a single qubit.
func (t Term) Linear() bool { return t.I == t.J }

// Qubits returns the qubit subset t acts on: {I} or {I, J}.
func (t Term) Qubits() []int {
	if t.Linear() {
		return []int{t.I}
	}

	return []int{t.I, t.J}
}

// compareTerms orders linear terms before quadratic ones, then by (I, J).
func compareTerms(a, b Term) int {
	if a.Linear() != b.Linear() {
		if a.Linear() {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.I, b.I); c != 0 {
		return c
	}

	return cmp.Compare(a.J, b.J)
}

// Hamiltonian is H = Σ h_i·Z_i + Σ J_ij·Z_i·Z_j over NumQubits qubits.
// Offset is the constant dropped from the terms: Energy + Offset is the cost
// of the model the Hamiltonian was encoded from.
type Hamiltonian struct {
	NumQubits int
	Terms     []Term
	Offset    float64
}

// Validate checks qubit count, term indices, finiteness and canonical order.
func (h Hamiltonian) Validate() error {
	if h.NumQubits <= 0 {
		return fmt.Errorf("%w: %d qubits", ErrInvalidHamiltonian, h.NumQubits)
	}
	if math.IsNaN(h.Offset) || math.IsInf(h.Offset, 0) {
		return fmt.Errorf("%w: non-finite offset", ErrInvalidHamiltonian)
	}
	for k, t := range h.Terms {
		if t.I < 0 || t.J >= h.NumQubits || t.I > t.J {
			return fmt.Errorf("%w: term %d acts on (%d,%d)", ErrInvalidHamiltonian, k, t.I, t.J)
		}
		if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
			return fmt.Errorf("%w: term %d has non-finite coefficient", ErrInvalidHamiltonian, k)
		}
		if k > 0 && compareTerms(h.Terms[k-1], t) >= 0 {
			return fmt.Errorf("%w: term %d out of order or repeated", ErrInvalidHamiltonian, k)
		}
	}

	return nil
}

// Canonicalize returns a copy with I ≤ J in every term, terms in canonical
// order and repeated subsets merged by summing their coefficients.
func (h Hamiltonian) Canonicalize() Hamiltonian {
	terms := make([]Term, len(h.Terms))
	for k, t := range h.Terms {
		if t.I > t.J {
			t.I, t.J = t.J, t.I
		}
		terms[k] = t
	}
	slices.SortStableFunc(terms, compareTerms)

	merged := terms[:0]
	for _, t := range terms {
		if n := len(merged); n > 0 && merged[n-1].I == t.I && merged[n-1].J == t.J {
			merged[n-1].Coeff += t.Coeff
			continue
		}
		merged = append(merged, t)
	}

	return Hamiltonian{NumQubits: h.NumQubits, Terms: merged, Offset: h.Offset}
}

// Coefficient returns the weight of the subset {i, j} (i == j for a linear
// term), or 0 when the Hamiltonian carries no such term. Argument order does
// not matter. Terms must be in canonical order.
func (h Hamiltonian) Coefficient(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	k, found := slices.BinarySearchFunc(h.Terms, Term{I: i, J: j}, compareTerms)
	if !found {
		return 0
	}

	return h.Terms[k].Coeff
}

// Linear returns the dense field vector h (length NumQubits).
func (h Hamiltonian) Linear() []float64 {
	out := make([]float64, h.NumQubits)
	for _, t := range h.Terms {
		if t.Linear() {
			out[t.I] += t.Coeff
		}
	}

	return out
}

// Quadratic returns the pairwise terms in canonical order.
func (h Hamiltonian) Quadratic() []Term {
	out := make([]Term, 0, len(h.Terms))
	for _, t := range h.Terms {
		if !t.Linear() {
			out = append(out, t)
		}
	}

	return out
}
