// SPDX-License-Identifier: MIT

// Package eigen: domain-facing types shared by the validator, the rotation
// engine and the public facades. Errors live in errors.go and configuration
// in options.go per the package conventions.
package eigen

// Family names the numeric family of a matrix's elements. Exactly one family
// is active per decomposition; FamilyMixed and FamilyUnsupported are
// classifier verdicts, never engine inputs.
type Family int

const (
	// FamilyUnsupported marks elements outside every supported family.
	// It is the zero value on purpose: an unclassified matrix routes nowhere.
	FamilyUnsupported Family = iota

	// FamilyFloating marks native float64 elements (fast path).
	FamilyFloating

	// FamilyDecimal marks arbitrary-precision decimal.Decimal elements.
	FamilyDecimal

	// FamilyRational marks exact *big.Rat elements.
	FamilyRational

	// FamilyMixed marks containers whose elements span several families.
	FamilyMixed
)

// String returns a stable lowercase name for the family.
func (f Family) String() string {
	switch f {
	case FamilyFloating:
		return "floating"
	case FamilyDecimal:
		return "decimal"
	case FamilyRational:
		return "rational"
	case FamilyMixed:
		return "mixed"
	default:
		return "unsupported"
	}
}

// Container is the boundary with the matrix/array collaborator. The engine
// consumes it read-only: Size validates squareness before any numeric work,
// ToArray supplies the cell data (the engine always works on its own copy).
//
// Grid is the canonical implementation; any storage that can present its
// elements as a [][]any snapshot satisfies the contract.
type Container interface {
	// Size returns the row and column counts.
	// Complexity: O(1).
	Size() (rows, cols int)

	// ToArray returns a fresh, mutable 2D snapshot of the elements.
	// Complexity: O(rows*cols).
	ToArray() [][]any
}

// Pivot names the off-diagonal entry currently targeted for annihilation:
// the (Row, Col) pair with Row < Col whose magnitude is maximal over the
// strict upper triangle, plus that magnitude in native float64.
type Pivot struct {
	Row, Col  int
	Magnitude float64
}

// Decomposition is the assembled result of Decompose: the eigenvalues in
// ascending order and a Grid whose k-th column is the eigenvector matching
// Values[k]. Values elements carry the input's family (float64,
// decimal.Decimal or *big.Rat), reported in Family.
type Decomposition struct {
	Family  Family
	Values  []any
	Vectors *Grid
}
