package eigen

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/katalvlaran/lvqubo/ising"
)

// retrySolver retries transient backend failures with exponential backoff.
type retrySolver struct {
	next       Eigensolver
	maxRetries uint64
	initial    time.Duration
}

// Retry wraps next so that failed calls are retried up to maxRetries times,
// starting at the initial interval and backing off exponentially. Validation
// errors (ErrInvalidHamiltonian, ErrTooManyQubits, ErrInvalidConfig) and
// context errors are returned at once. A non-positive initial interval uses
// backoff's default.
func Retry(next Eigensolver, maxRetries uint64, initial time.Duration) Eigensolver {
	return &retrySolver{next: next, maxRetries: maxRetries, initial: initial}
}

// MinimumEigenvalue implements Eigensolver.
func (r *retrySolver) MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg Config) (Result, error) {
	bo := backoff.NewExponentialBackOff()
	if r.initial > 0 {
		bo.InitialInterval = r.initial
	}
	bo.MaxElapsedTime = 0 // bounded by maxRetries and ctx

	op := func() (Result, error) {
		res, err := r.next.MinimumEigenvalue(ctx, h, cfg)
		if err != nil && permanent(err) {
			return Result{}, backoff.Permanent(err)
		}

		return res, err
	}

	return backoff.RetryWithData(op, backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx))
}
