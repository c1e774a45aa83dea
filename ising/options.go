package ising

import "math"

const (
	// DefaultTolerance prunes only exact zeros.
	DefaultTolerance = 0.0

	// DefaultKeepZeros drops pruned terms from the Hamiltonian.
	DefaultKeepZeros = false
)

const panicToleranceInvalid = "ising: WithTolerance: tolerance must be finite, non-negative"

// Option configures Encode.
type Option func(*Options)

// Options is the resolved Encode configuration.
type Options struct {
	KeepZeros bool    // emit every subset, even with a zero coefficient
	Tolerance float64 // |coeff| ≤ Tolerance counts as zero
}

// WithKeepZeros emits all n + n(n−1)/2 terms, zero or not.
func WithKeepZeros() Option {
	return func(o *Options) { o.KeepZeros = true }
}

// WithTolerance prunes terms with |coeff| ≤ eps. A positive eps shifts
// energies by at most the sum of the pruned magnitudes.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{KeepZeros: DefaultKeepZeros, Tolerance: DefaultTolerance}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
