// SPDX-License-Identifier: MIT

// Package eigen: the Arithmetic provider abstraction. The generic rotation
// engine is written once against this interface; one concrete provider
// exists per non-native numeric family (arithmetic_decimal.go,
// arithmetic_rat.go). The float64 family bypasses the interface entirely —
// its kernels in pivot.go/rotate.go operate on raw float64 for speed.
package eigen

// Arithmetic supplies the scalar operations of one numeric family T.
// Implementations MUST be pure: every method returns a fresh value and
// never mutates its operands (essential for pointer-backed families such
// as *big.Rat, where aliasing a mutated operand would corrupt the working
// matrix mid-rotation).
type Arithmetic[T any] interface {
	// Ring operations.
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T

	// Abs returns |a| in the family.
	Abs(a T) T

	// Cmp compares a and b: -1 if a < b, 0 if equal, +1 if a > b.
	// This is the family-appropriate equality used by the validator
	// (Cmp == 0) and the ordering used by the pivot scan and the sorter.
	Cmp(a, b T) int

	// Trigonometric primitives for the rotation angle and its application.
	Sin(a T) T
	Cos(a T) T
	Atan(a T) T

	// Identity elements.
	Zero() T
	One() T

	// FromFloat64 lifts a native float into the family (used for the
	// size-scaled convergence threshold |precision/N|).
	FromFloat64(f float64) T

	// Float64 projects a family scalar to native float64. Used ONLY for the
	// degenerate-diagonal test (see degenerateGapTol) and for reporting;
	// never inside the ring operations of a rotation.
	Float64(a T) float64
}
