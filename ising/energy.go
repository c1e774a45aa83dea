package ising

import (
	"fmt"

	"github.com/katalvlaran/lvqubo/qubo"
)

// Energy evaluates Σ coeff·Π z over the terms for spins z ∈ {±1}ⁿ.
// The offset is not included.
// Errors: ErrInvalidHamiltonian, ErrInvalidSpins. Complexity: O(len(Terms)).
func (h Hamiltonian) Energy(spins []int8) (float64, error) {
	if err := h.Validate(); err != nil {
		return 0, isingErrorf("Energy", err)
	}
	if len(spins) != h.NumQubits {
		return 0, fmt.Errorf("Energy: %w: length %d, want %d", ErrInvalidSpins, len(spins), h.NumQubits)
	}
	for i, s := range spins {
		if s != 1 && s != -1 {
			return 0, fmt.Errorf("Energy: %w: z[%d]=%d", ErrInvalidSpins, i, s)
		}
	}

	return h.energy(spins), nil
}

func (h Hamiltonian) energy(spins []int8) float64 {
	var e float64
	for _, t := range h.Terms {
		if t.I == t.J {
			e += t.Coeff * float64(spins[t.I])
		} else {
			e += t.Coeff * float64(spins[t.I]*spins[t.J])
		}
	}

	return e
}

// EnergyOfAssignment evaluates the spin configuration z_i = 1 − 2x_i.
func (h Hamiltonian) EnergyOfAssignment(x qubo.Assignment) (float64, error) {
	if err := h.Validate(); err != nil {
		return 0, isingErrorf("EnergyOfAssignment", err)
	}
	if err := x.Validate(h.NumQubits); err != nil {
		return 0, fmt.Errorf("EnergyOfAssignment: %w: %w", ErrInvalidSpins, err)
	}

	return h.energy(SpinsFromAssignment(x)), nil
}

// EnergyOfIndex evaluates the basis state with enumeration index k, qubit 0
// being the most significant bit.
func (h Hamiltonian) EnergyOfIndex(k uint64) (float64, error) {
	if err := h.Validate(); err != nil {
		return 0, isingErrorf("EnergyOfIndex", err)
	}
	if (h.NumQubits < 64 && k>>uint(h.NumQubits) != 0) {
		return 0, fmt.Errorf("EnergyOfIndex: %w: index %d for %d qubits", ErrInvalidSpins, k, h.NumQubits)
	}

	return h.energy(spinsOfIndex(k, make([]int8, h.NumQubits))), nil
}

// Spectrum returns the energy (without offset) of every basis state in
// enumeration order. The Hamiltonian is diagonal in the Z basis, so these are
// exactly its 2ⁿ eigenvalues.
// Errors: ErrInvalidHamiltonian, ErrTooManyQubits when NumQubits > maxQubits.
// Complexity: O(2ⁿ·len(Terms)).
func (h Hamiltonian) Spectrum(maxQubits int) ([]float64, error) {
	if err := h.Validate(); err != nil {
		return nil, isingErrorf("Spectrum", err)
	}
	if h.NumQubits > maxQubits || h.NumQubits > 62 {
		return nil, fmt.Errorf("Spectrum: %w: %d > %d", ErrTooManyQubits, h.NumQubits, maxQubits)
	}
	total := uint64(1) << uint(h.NumQubits)
	out := make([]float64, total)
	buf := make([]int8, h.NumQubits)
	var k uint64
	for k = 0; k < total; k++ {
		out[k] = h.energy(spinsOfIndex(k, buf))
	}

	return out, nil
}

// SpinsFromAssignment maps x_i ∈ {0,1} to z_i = 1 − 2x_i ∈ {+1,−1}.
func SpinsFromAssignment(x qubo.Assignment) []int8 {
	z := make([]int8, len(x))
	for i, v := range x {
		z[i] = 1 - 2*int8(v&1)
	}

	return z
}

// AssignmentFromSpins maps z_i to x_i = (1 − z_i)/2.
// Errors: ErrInvalidSpins for values other than ±1.
func AssignmentFromSpins(z []int8) (qubo.Assignment, error) {
	x := make(qubo.Assignment, len(z))
	for i, s := range z {
		switch s {
		case 1:
			x[i] = 0
		case -1:
			x[i] = 1
		default:
			return nil, fmt.Errorf("AssignmentFromSpins: %w: z[%d]=%d", ErrInvalidSpins, i, s)
		}
	}

	return x, nil
}

func spinsOfIndex(k uint64, buf []int8) []int8 {
	n := len(buf)
	for i := 0; i < n; i++ {
		buf[i] = 1 - 2*int8((k>>uint(n-1-i))&1)
	}

	return buf
}
