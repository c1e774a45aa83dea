package ising

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrInvalidModel is returned by Encode for a nil or empty cost model.
	ErrInvalidModel = errors.New("ising: invalid model")

	// ErrInvalidHamiltonian is returned for a non-positive qubit count, a term
	// outside [0, NumQubits), a non-finite coefficient or a repeated subset.
	ErrInvalidHamiltonian = errors.New("ising: invalid hamiltonian")

	// ErrInvalidSpins is returned when a spin vector has the wrong length or a
	// value other than ±1.
	ErrInvalidSpins = errors.New("ising: invalid spins")

	// ErrTooManyQubits is returned by Spectrum above the requested cap.
	ErrTooManyQubits = errors.New("ising: too many qubits")
)

func isingErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
