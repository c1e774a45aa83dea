package ising

import (
	"encoding/json"
	"fmt"
)

// Wire form:
//
//	{"num_qubits":2,"offset":0.5,"terms":[{"i":0,"j":1,"coeff":-0.5,"pauli":"ZZ"}]}
//
// "pauli" is the big-endian label, written for readers and ignored on input.

type jsonTerm struct {
	I     int     `json:"i"`
	J     int     `json:"j"`
	Coeff float64 `json:"coeff"`
	Pauli string  `json:"pauli,omitempty"`
}

type jsonHamiltonian struct {
	NumQubits int        `json:"num_qubits"`
	Offset    float64    `json:"offset"`
	Terms     []jsonTerm `json:"terms"`
}

// MarshalJSON implements json.Marshaler.
func (h Hamiltonian) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, isingErrorf("MarshalJSON", err)
	}
	w := jsonHamiltonian{
		NumQubits: h.NumQubits,
		Offset:    h.Offset,
		Terms:     make([]jsonTerm, len(h.Terms)),
	}
	for k, t := range h.Terms {
		w.Terms[k] = jsonTerm{I: t.I, J: t.J, Coeff: t.Coeff, Pauli: h.label(t, BigEndian)}
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. Terms are canonicalized
// (repeated subsets summed) and the result validated.
func (h *Hamiltonian) UnmarshalJSON(data []byte) error {
	var w jsonHamiltonian
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("UnmarshalJSON: %w: %w", ErrInvalidHamiltonian, err)
	}
	raw := Hamiltonian{NumQubits: w.NumQubits, Offset: w.Offset, Terms: make([]Term, len(w.Terms))}
	for k, t := range w.Terms {
		raw.Terms[k] = Term{I: t.I, J: t.J, Coeff: t.Coeff}
	}
	c := raw.Canonicalize()
	if err := c.Validate(); err != nil {
		return isingErrorf("UnmarshalJSON", err)
	}
	*h = c

	return nil
}
