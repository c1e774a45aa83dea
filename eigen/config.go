package eigen

import "fmt"

// Backend names accepted by New.
const (
	BackendDense = "dense"
)

// Defaults mirror a single-layer QAOA run with COBYLA capped at 100 iterations.
const (
	DefaultBackend   = BackendDense
	DefaultMaxQubits = 10
	DefaultReps      = 1
	DefaultMaxIter   = 100
	DefaultOptimizer = "COBYLA"
)

// Config is passed explicitly on every call; there is no package-level state.
// Backends ignore the fields that do not apply to them: DenseSolver is exact
// and ignores Reps, MaxIter and Optimizer.
type Config struct {
	// Backend selects the implementation returned by New.
	Backend string `yaml:"backend" json:"backend"`

	// MaxQubits caps the Hamiltonian size the backend accepts.
	MaxQubits int `yaml:"max_qubits" json:"max_qubits"`

	// Shots is the number of measurement samples; 0 reports exact probabilities.
	Shots int `yaml:"shots" json:"shots"`

	// Seed drives sampling. 0 selects a fixed default seed.
	Seed int64 `yaml:"seed" json:"seed"`

	// Reps is the ansatz depth of variational backends.
	Reps int `yaml:"reps" json:"reps"`

	// MaxIter bounds the classical optimizer of variational backends.
	MaxIter int `yaml:"max_iter" json:"max_iter"`

	// Optimizer names the classical optimizer of variational backends.
	Optimizer string `yaml:"optimizer" json:"optimizer"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Backend:   DefaultBackend,
		MaxQubits: DefaultMaxQubits,
		Reps:      DefaultReps,
		MaxIter:   DefaultMaxIter,
		Optimizer: DefaultOptimizer,
	}
}

// Validate checks every field for a sensible range.
func (c Config) Validate() error {
	switch {
	case c.Backend == "":
		return fmt.Errorf("%w: empty backend", ErrInvalidConfig)
	case c.MaxQubits < 1:
		return fmt.Errorf("%w: max_qubits=%d", ErrInvalidConfig, c.MaxQubits)
	case c.Shots < 0:
		return fmt.Errorf("%w: shots=%d", ErrInvalidConfig, c.Shots)
	case c.Reps < 1:
		return fmt.Errorf("%w: reps=%d", ErrInvalidConfig, c.Reps)
	case c.MaxIter < 1:
		return fmt.Errorf("%w: max_iter=%d", ErrInvalidConfig, c.MaxIter)
	}

	return nil
}

// New returns the backend named by cfg.Backend.
func New(cfg Config) (Eigensolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, eigenErrorf("New", err)
	}
	switch cfg.Backend {
	case BackendDense:
		return NewDenseSolver(), nil
	default:
		return nil, fmt.Errorf("New: %w: unknown backend %q", ErrInvalidConfig, cfg.Backend)
	}
}
