package eigen

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvqubo/ising"
)

type rateLimitedSolver struct {
	next    Eigensolver
	limiter *rate.Limiter
}

// RateLimit wraps next so every call first waits on limiter. A call whose
// context expires before a token is available fails without reaching next.
func RateLimit(next Eigensolver, limiter *rate.Limiter) Eigensolver {
	return &rateLimitedSolver{next: next, limiter: limiter}
}

// MinimumEigenvalue implements Eigensolver.
func (r *rateLimitedSolver) MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg Config) (Result, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Result{}, fmt.Errorf("RateLimit: %w", err)
	}

	return r.next.MinimumEigenvalue(ctx, h, cfg)
}
