// Package eigen defines the boundary between an Ising Hamiltonian and a
// minimum-eigenvalue solver, plus the tools to check a solver against the
// exact enumeration.
//
// The contract is the Eigensolver interface: given a Hamiltonian and an
// explicit Config, return the lowest eigenvalue found and the most probable
// measured basis state. Variational backends (QAOA and friends) live outside
// this module and plug in through the interface; DenseSolver is the exact
// in-process reference backend built on gonum.
//
// Eigenvalues exclude Hamiltonian.Offset. Compare adds it back before
// matching a Result against qubo.Solve.
//
// Decorators wrap any Eigensolver for use against a remote service:
//
//	s := eigen.Retry(eigen.Breaker(eigen.RateLimit(backend, limiter), settings), 3, 100*time.Millisecond)
//
// Retry retries transient failures with exponential backoff; validation
// errors are permanent. Breaker stops calling a failing backend. RateLimit
// spaces calls out.
package eigen
