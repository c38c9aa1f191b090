// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the eigen
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package eigen

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "eigen: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with eigenErrorf at the facade —
// callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil container -> shape -> element family -> symmetry -> convergence.

var (
	// ErrNilContainer indicates that a nil Container was passed to Decompose.
	ErrNilContainer = errors.New("eigen: nil container")

	// ErrBadDimensions indicates that requested dimensions are non-positive
	// (empty input, or NewGrid with rows/cols <= 0).
	ErrBadDimensions = errors.New("eigen: dimensions must be > 0")

	// ErrBadShape signals that a square matrix was required but the input
	// wasn't (rows != cols, or a row whose length disagrees with the rest).
	ErrBadShape = errors.New("eigen: matrix must be square")

	// ErrRagged indicates that a 2D literal has rows of unequal length.
	ErrRagged = errors.New("eigen: ragged row lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("eigen: index out of range")

	// ErrUnsupportedType signals an element whose type belongs to none of the
	// supported numeric families (float64, decimal.Decimal, *big.Rat).
	ErrUnsupportedType = errors.New("eigen: unsupported element type")

	// ErrMixedTypes signals that elements span more than one numeric family.
	ErrMixedTypes = errors.New("eigen: mixed element types")

	// ErrNotSymmetric signals that some x[i][j] != x[j][i] under the active
	// family's equality (epsilon-based for floats, exact otherwise).
	ErrNotSymmetric = errors.New("eigen: matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (Grid ingestion and Set).
	ErrNaNInf = errors.New("eigen: NaN or Inf encountered")

	// ErrNoConvergence is returned when WithMaxRotations is set and the
	// off-diagonal mass does not fall below the threshold within the cap.
	ErrNoConvergence = errors.New("eigen: decomposition did not converge")
)
