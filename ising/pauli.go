package ising

import "strings"

// BitOrder selects how qubit indices map to label positions.
type BitOrder int

const (
	// BigEndian puts qubit 0 leftmost, matching qubo bitstrings.
	BigEndian BitOrder = iota
	// LittleEndian puts qubit 0 rightmost (Qiskit's label order).
	LittleEndian
)

// String implements fmt.Stringer.
func (o BitOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return "unknown"
	}
}

// PauliTerm is a (label, weight) pair, e.g. ("ZIZ", -0.5), the input shape of
// a weighted-Pauli operator constructor.
type PauliTerm struct {
	Label string  `json:"label"`
	Coeff float64 `json:"coeff"`
}

// PauliList renders every term as an n-character label of 'I' and 'Z' in
// canonical term order. The offset is not emitted; add it as an all-'I'
// term if the consumer wants the exact cost scale.
func (h Hamiltonian) PauliList(order BitOrder) []PauliTerm {
	out := make([]PauliTerm, 0, len(h.Terms))
	for _, t := range h.Terms {
		out = append(out, PauliTerm{Label: h.label(t, order), Coeff: t.Coeff})
	}

	return out
}

// IdentityLabel returns the all-'I' label of an n-qubit operator.
func (h Hamiltonian) IdentityLabel() string {
	return strings.Repeat("I", h.NumQubits)
}

func (h Hamiltonian) label(t Term, order BitOrder) string {
	b := []byte(h.IdentityLabel())
	for _, q := range t.Qubits() {
		pos := q
		if order == LittleEndian {
			pos = h.NumQubits - 1 - q
		}
		b[pos] = 'Z'
	}

	return string(b)
}
