// SPDX-License-Identifier: MIT
// Package: eigen
//
// Purpose:
//  - Provide a single, canonical source of truth for pre-flight checks.
//  - Keep kernels/facades minimal by delegating shape/family/symmetry here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Family classification and symmetry checks run O(n²), row-major order.

package eigen

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// familyOf classifies a single cell. A nil *big.Rat is unsupported — the
// engine cannot treat a missing rational as any number.
func familyOf(v any) Family {
	switch cell := v.(type) {
	case float64:
		return FamilyFloating
	case decimal.Decimal:
		return FamilyDecimal
	case *big.Rat:
		if cell == nil {
			return FamilyUnsupported
		}
		return FamilyRational
	default:
		return FamilyUnsupported
	}
}

// Classify inspects every cell in row-major order and reports the single
// numeric family populating the container, FamilyMixed when families
// disagree, or FamilyUnsupported on the first foreign element.
//
// Inputs: cells — a rectangular, non-empty 2D snapshot (callers validate shape first).
// Determinism: fixed i→j scan; first foreign element short-circuits.
// Complexity: O(n²), Space O(1).
//
// AI-Hints:
//   - Use this from a dispatch layer to route containers without duplicating
//     the family rules; Decompose calls it internally.
func Classify(cells [][]any) Family {
	var (
		fam  Family // family of the first element
		cur  Family // family of the current element
		seen bool   // whether fam has been fixed yet
		i, j int    // loop iterators
	)
	for i = 0; i < len(cells); i++ {
		for j = 0; j < len(cells[i]); j++ {
			cur = familyOf(cells[i][j])
			if cur == FamilyUnsupported {
				return FamilyUnsupported // fail-fast on foreign element
			}
			if !seen {
				fam, seen = cur, true
				continue
			}
			if cur != fam {
				return FamilyMixed // families disagree
			}
		}
	}

	return fam
}

// squareDims validates that m is a non-empty square 2D slice and returns N.
// Returns ErrBadDimensions on empty input, ErrBadShape on any row whose
// length differs from the row count.
// Complexity: O(n).
func squareDims[T any](m [][]T) (int, error) {
	n := len(m)
	if n == 0 {
		return 0, ErrBadDimensions
	}
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			return 0, ErrBadShape
		}
	}

	return n, nil
}

// symmetricFloat checks x[i][j] ≈ x[j][i] within eps over the strict upper
// triangle. Deterministic i→j order, fail-fast on first violation.
// Complexity: O(n²), Space O(1).
func symmetricFloat(x [][]float64, eps float64) bool {
	n := len(x)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(x[i][j]-x[j][i]) > eps {
				return false
			}
		}
	}

	return true
}

// symmetricGeneric checks x[i][j] == x[j][i] under the family's exact
// comparison (Cmp == 0) over the strict upper triangle.
// Complexity: O(n²), Space O(1).
func symmetricGeneric[T any](x [][]T, ar Arithmetic[T]) bool {
	n := len(x)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if ar.Cmp(x[i][j], x[j][i]) != 0 {
				return false
			}
		}
	}

	return true
}
