// Package pipeline wires the QUBO packages into one run: load a model,
// enumerate it exactly, encode it as an Ising Hamiltonian, hand the
// Hamiltonian to an eigensolver and compare the two answers.
//
// It owns the application-level concerns the core packages leave out: a
// YAML configuration, structured logging and report rendering.
package pipeline
