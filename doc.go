// Package lvqubo is a small toolkit for Quadratic Unconstrained Binary
// Optimization: find x ∈ {0,1}ⁿ minimizing xᵀQx.
//
// What is inside?
//
//	A pure-Go, deterministic pipeline with two ways to the same optimum:
//		• Exact search: enumerate all 2ⁿ assignments, keep the full landscape
//		• Ising encoding: rewrite Q as Z and Z⊗Z Pauli terms plus an offset
//		• Eigensolver boundary: hand the Hamiltonian to a minimum-eigenvalue
//		  backend and check its answer against the enumeration
//
// Subpackages:
//
//	matrix/     - dense row-major storage, validators, sentinel errors
//	qubo/       - cost model, assignments, exact solver, qbsolv .qubo files
//	ising/      - QUBO→Ising encoder, spin energies, Pauli labels, JSON
//	eigen/      - Eigensolver contract, exact dense backend, retry/breaker/rate limit, Compare
//	pipeline/   - YAML config, slog logger, run + report
//	cmd/lvqubo/ - command-line front end
//
// Quick example, x0 + x1 − 2·x0·x1:
//
//	m, _ := qubo.NewModel([][]float64{{1, -1}, {-1, 1}})
//	out, table, _ := qubo.Solve(m)   // best 00, cost 0, 2 ties
//	h, _ := ising.Encode(m)          // −0.5·ZZ, offset 0.5
//
//	go get github.com/katalvlaran/lvqubo
package lvqubo
