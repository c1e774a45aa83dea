// Package qubo provides the cost model and the exact solver for Quadratic
// Unconstrained Binary Optimization.
//
// A QUBO instance is an n×n real matrix Q; the cost of a binary assignment
// x ∈ {0,1}ⁿ is the full bilinear form
//
//	cost(x) = Σ_i Σ_j Q[i][j]·x_i·x_j
//
// with no implicit symmetrization (diagonal entries act as linear terms since
// x_i² = x_i). Solve enumerates all 2ⁿ assignments and returns the global
// minimum together with the ordered assignment→cost table.
//
// Ordering conventions (used everywhere in this module):
//
//   - Enumeration index k ∈ [0, 2ⁿ) maps to the n-digit binary form of k.
//   - x_0 is the most significant (leftmost) digit, so the last variable
//     toggles fastest: 00, 01, 10, 11 for n = 2.
//   - Bitstrings render x_0 first, so Bitstring(k) is simply k in binary.
//
// Ties on the minimum cost are broken by the lowest enumeration index, both in
// the serial and in the parallel (WithWorkers) search.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ) memory for the table (8 bytes per entry).
// The default cap of DefaultMaxVariables keeps callers from hanging the
// process; larger instances belong to the eigensolver backends of package eigen.
package qubo
