// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the decomposition facades.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package eigen

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the convergence precision ψ: the loop exits once the
	// maximal off-diagonal magnitude falls below |ψ/N| for an N×N input.
	DefaultPrecision = 1e-12

	// DefaultEpsilon is the non-negative tolerance used by the float-family
	// symmetry check (|x[i][j]-x[j][i]| ≤ eps). Decimal and rational families
	// always compare exactly.
	DefaultEpsilon = 1e-9

	// DefaultMaxRotations is the rotation cap; 0 means unbounded, preserving
	// the classical behavior where convergence is assumed, never enforced.
	DefaultMaxRotations = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid    = "eigen: WithPrecision: precision must be finite and positive"
	panicEpsilonInvalid      = "eigen: WithEpsilon: eps must be finite, non-negative"
	panicMaxRotationsInvalid = "eigen: WithMaxRotations: n must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque; public entry points accept `...Option` and
// internally resolve them via gatherOptions.
type Options struct {
	precision    float64 // > 0; DefaultPrecision
	eps          float64 // >= 0; DefaultEpsilon
	maxRotations int     // >= 0; DefaultMaxRotations (0 = unbounded)
}

// ---------- Constructors (WithX) ----------

// WithPrecision sets the convergence precision ψ (threshold is |ψ/N|).
// Implementation:
//   - Stage 1: validate ψ is finite and > 0.
//   - Stage 2: return a setter that writes ψ into Options.
//
// Errors:
//   - Panics with a stable message when ψ is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Smaller ψ sharpens the spectrum at the cost of more rotations.
//
// AI-Hints:
//   - 1e-12 (the default) suits float64; for decimal inputs a smaller ψ is
//     meaningful only together with a higher decimal.DivisionPrecision.
func WithPrecision(precision float64) Option {
	if isNonFinite(precision) || precision <= 0 {
		panic(panicPrecisionInvalid)
	}

	// Assign validated precision
	return func(o *Options) { o.precision = precision }
}

// WithEpsilon sets the float-family symmetry tolerance eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - eps = 0 demands bitwise symmetry; use for synthetic inputs only.
//   - Has no effect on decimal/rational inputs (exact equality there).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithMaxRotations caps the number of Jacobi rotations at n; once exceeded
// the decomposition fails with ErrNoConvergence instead of looping.
// Implementation:
//   - Stage 1: validate n ≥ 0 (0 restores the unbounded default).
//   - Stage 2: return a setter that writes n into Options.
//
// Errors:
//   - Panics with a stable message when n is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - A generous cap for an N×N input is a few hundred rotations per N²
//     off-diagonal entries; n = 10·N² is a comfortable ceiling in practice.
func WithMaxRotations(n int) Option {
	if n < 0 {
		panic(panicMaxRotationsInvalid)
	}

	// Assign validated cap
	return func(o *Options) { o.maxRotations = n }
}

// gatherOptions applies setters over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		precision:    DefaultPrecision,
		eps:          DefaultEpsilon,
		maxRotations: DefaultMaxRotations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
