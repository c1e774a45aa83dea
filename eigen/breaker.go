package eigen

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/katalvlaran/lvqubo/ising"
)

// Breaker defaults.
const (
	DefaultBreakerName        = "eigensolver"
	DefaultBreakerMaxRequests = 1
	DefaultBreakerTimeout     = 30 * time.Second
	DefaultBreakerTrips       = 5
)

// DefaultBreakerSettings opens after DefaultBreakerTrips consecutive backend
// failures and lets a trial call through after DefaultBreakerTimeout.
func DefaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        DefaultBreakerName,
		MaxRequests: DefaultBreakerMaxRequests,
		Timeout:     DefaultBreakerTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= DefaultBreakerTrips
		},
	}
}

type breakerSolver struct {
	next Eigensolver
	cb   *gobreaker.CircuitBreaker
}

// Breaker wraps next in a circuit breaker. While open, calls fail fast with
// gobreaker.ErrOpenState. Validation and context errors never count as
// backend failures unless st.IsSuccessful says otherwise.
func Breaker(next Eigensolver, st gobreaker.Settings) Eigensolver {
	if st.IsSuccessful == nil {
		st.IsSuccessful = func(err error) bool { return err == nil || permanent(err) }
	}

	return &breakerSolver{next: next, cb: gobreaker.NewCircuitBreaker(st)}
}

// MinimumEigenvalue implements Eigensolver.
func (b *breakerSolver) MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg Config) (Result, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.MinimumEigenvalue(ctx, h, cfg)
	})
	if err != nil {
		return Result{}, err
	}

	return out.(Result), nil
}
