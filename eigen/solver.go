package eigen

import (
	"context"

	"github.com/katalvlaran/lvqubo/ising"
)

// Eigensolver finds the minimum eigenvalue of an Ising Hamiltonian.
// Implementations must not mutate h and must honor ctx cancellation.
type Eigensolver interface {
	MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg Config) (Result, error)
}

// SolverFunc adapts a function to the Eigensolver interface.
type SolverFunc func(ctx context.Context, h ising.Hamiltonian, cfg Config) (Result, error)

// MinimumEigenvalue calls f.
func (f SolverFunc) MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg Config) (Result, error) {
	return f(ctx, h, cfg)
}

// Measurement is one observed basis state. Bitstring keeps qubit 0 leftmost.
type Measurement struct {
	Bitstring   string  `json:"bitstring"`
	Probability float64 `json:"probability"`
}

// Result is what a backend reports. Eigenvalue excludes Hamiltonian.Offset.
type Result struct {
	Eigenvalue float64     `json:"eigenvalue"`
	Best       Measurement `json:"best_measurement"`
	Backend    string      `json:"backend,omitempty"`
}
