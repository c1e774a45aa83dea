// Package ising rewrites a QUBO cost model as an Ising Hamiltonian: a weighted
// sum of Pauli-Z (linear) and Z⊗Z (pairwise) terms plus a constant offset.
//
// Encoding convention:
//
//	x_i = (1 − z_i)/2,   z_i ∈ {+1, −1}   (x_i = 0 ↔ z_i = +1 ↔ |0⟩)
//	W_ij = Q[i][j] + Q[j][i]
//	h_i  = −½·(Q[i][i] + Σ_{j≠i} W_ij/2)
//	J_ij = W_ij/4                        (i < j)
//	offset = Σ_i Q[i][i]/2 + Σ_{i<j} W_ij/4
//
// For every assignment x, Energy(z) + Offset equals the QUBO cost xᵀQx up to
// floating-point rounding, so the Ising spectrum orders the search space
// exactly as the QUBO cost does. The offset is kept on Hamiltonian.Offset and
// never appears among the terms.
//
// Term order is deterministic: linear terms by ascending qubit, then
// quadratic terms in lexicographic (i, j) order.
//
// Qubit i of the Hamiltonian is variable i of the model, and bitstrings keep
// qubit 0 leftmost, the same order qubo.Assignment renders. PauliList can emit
// labels in either order.
package ising
