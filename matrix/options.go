// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Tolerances are explicit arguments of the checks that use them
//     (ValidateSymmetric, AllClose), never hidden option state.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on Set and FromRows.
// Use only for scratch buffers that are sanitized before reaching a solver.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ValidatesNaNInf reports whether the finite-value policy is enabled.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// NewMatrixOptions resolves opts against the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions starts from the Default* constants and applies user setters
// in order; later setters win.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
