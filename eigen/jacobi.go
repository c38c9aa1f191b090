// SPDX-License-Identifier: MIT

// Package eigen: convergence loop and public facades. The drivers diagFloat
// and diagGeneric own the iterate-until-quiet state machine; the facades
// validate, clone, dispatch by family and assemble results.
package eigen

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDecompose        = "Decompose"
	opDecomposeFloat64 = "DecomposeFloat64"
	opDecomposeDecimal = "DecomposeDecimal"
	opDecomposeRat     = "DecomposeRat"
)

// eigenErrorf wraps err with an operation tag, preserving the original error
// via %w so callers keep errors.Is/As matching. Use only when err != nil.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Convergence drivers ----------

// diagFloat drives the float64 fast path to a fixed point.
//
// Implementation:
//   - Stage 1: allocate identity transform s and scratch rows; compute the
//     size-scaled threshold |precision/N| and the pivot of the input.
//   - Stage 2: while the pivot magnitude is ≥ threshold, rotate at the pivot
//     and rescan; honor the optional rotation cap.
//   - Stage 3: read eigenvalues off the diagonal, order the spectrum by
//     repeated minimum extraction and permute the columns of s to match.
//
// Behavior highlights:
//   - Two states only: iterating and converged. No other exit by default.
//   - x is owned by the caller's clone and mutated in place.
//
// Errors:
//   - ErrNoConvergence (only when Options.maxRotations > 0 and exceeded).
//
// Determinism:
//   - Fixed pivot scan, fixed update order, fixed extraction tie-breaks.
//
// Complexity:
//   - Time O(n²·R) with data-dependent rotation count R, Space O(n²).
func diagFloat(x [][]float64, o Options) ([]float64, [][]float64, error) {
	n := len(x)
	s := identityFloat(n)
	threshold := math.Abs(o.precision / float64(n))

	var (
		ri        = make([]float64, n) // rotation scratch, row p
		rj        = make([]float64, n) // rotation scratch, row q
		rotations int                  // applied rotation count
		theta     float64              // current rotation angle
		pv        = pivotFloat(x)      // pivot of the original input
	)
	for pv.Magnitude >= threshold {
		if o.maxRotations > 0 && rotations >= o.maxRotations {
			return nil, nil, ErrNoConvergence
		}
		theta = angleFloat(x[pv.Row][pv.Row], x[pv.Col][pv.Col], x[pv.Row][pv.Col])
		rotateFloat(x, s, pv.Row, pv.Col, theta, ri, rj)
		rotations++
		pv = pivotFloat(x) // rescan after every rotation
	}

	// Unsorted eigenvalues live on the diagonal after convergence.
	e := make([]float64, n)
	for i := 0; i < n; i++ {
		e[i] = x[i][i]
	}
	order := extractionOrder(e, func(a, b float64) bool { return a < b })
	values, vectors := applySpectrumOrder(e, s, order)

	return values, vectors, nil
}

// diagGeneric is diagFloat parameterized over the Arithmetic provider: the
// threshold is lifted into the family once and every magnitude comparison
// uses the family's Cmp, so precision is never truncated mid-loop.
//
// Complexity: Time O(n²·R) provider calls, Space O(n²).
func diagGeneric[T any](x [][]T, ar Arithmetic[T], o Options) ([]T, [][]T, error) {
	n := len(x)
	s := identityGeneric(n, ar)
	threshold := ar.Abs(ar.FromFloat64(o.precision / float64(n)))

	if n >= 2 {
		var (
			ri        = make([]T, n) // rotation scratch, row p
			rj        = make([]T, n) // rotation scratch, row q
			rotations int            // applied rotation count
			theta     T              // current rotation angle
		)
		p, q, mag := pivotGeneric(x, ar) // pivot of the original input
		for ar.Cmp(mag, threshold) >= 0 {
			if o.maxRotations > 0 && rotations >= o.maxRotations {
				return nil, nil, ErrNoConvergence
			}
			theta = angleGeneric(ar, x[p][p], x[q][q], x[p][q])
			rotateGeneric(ar, x, s, p, q, theta, ri, rj)
			rotations++
			p, q, mag = pivotGeneric(x, ar) // rescan after every rotation
		}
	}

	// Unsorted eigenvalues live on the diagonal after convergence.
	e := make([]T, n)
	for i := 0; i < n; i++ {
		e[i] = x[i][i]
	}
	order := extractionOrder(e, func(a, b T) bool { return ar.Cmp(a, b) < 0 })
	values, vectors := applySpectrumOrder(e, s, order)

	return values, vectors, nil
}

// ---------- Typed facades ----------

// DecomposeFloat64 computes the full eigen-decomposition of a symmetric
// float64 matrix on the native fast path.
//
// Implementation:
//   - Stage 1: validate squareness and symmetry (|x[i][j]-x[j][i]| ≤ eps).
//   - Stage 2: clone the input and run the Jacobi loop to convergence.
//
// Behavior highlights:
//   - The input is never mutated; results are freshly allocated.
//   - values ascend; vectors' k-th column matches values[k]; vectorsᵗ·vectors ≈ I.
//
// Inputs:
//   - m: N×N symmetric matrix.
//   - opts: WithPrecision / WithEpsilon / WithMaxRotations.
//
// Returns:
//   - []float64: eigenvalues, ascending.
//   - [][]float64: eigenvector matrix (columns correspond to values).
//
// Errors:
//   - ErrBadDimensions (empty), ErrBadShape (non-square), ErrNotSymmetric,
//     ErrNoConvergence (capped runs only).
//
// Determinism:
//   - Fully deterministic for fixed input and options.
//
// Complexity:
//   - Time O(n²·R), Space O(n²). R is the data-dependent rotation count.
//
// Notes:
//   - No NaN/±Inf guard exists on this entry point; non-finite input can
//     corrupt pivot selection or stall convergence. Ingest through Grid to
//     get the finite-value policy.
//
// AI-Hints:
//   - Pair WithMaxRotations with ErrNoConvergence handling in services that
//     cannot tolerate an unbounded loop on adversarial input.
func DecomposeFloat64(m [][]float64, opts ...Option) ([]float64, [][]float64, error) {
	o := gatherOptions(opts...)
	if _, err := squareDims(m); err != nil {
		return nil, nil, eigenErrorf(opDecomposeFloat64, err)
	}
	if !symmetricFloat(m, o.eps) {
		return nil, nil, eigenErrorf(opDecomposeFloat64, ErrNotSymmetric)
	}

	values, vectors, err := diagFloat(cloneFloat(m), o)
	if err != nil {
		return nil, nil, eigenErrorf(opDecomposeFloat64, err)
	}

	return values, vectors, nil
}

// DecomposeDecimal computes the full eigen-decomposition of a symmetric
// decimal matrix on the generic path with arbitrary-precision arithmetic.
// Symmetry is checked exactly (Cmp == 0). Contract and error surface match
// DecomposeFloat64; trig/division precision follows decimal.DivisionPrecision.
func DecomposeDecimal(m [][]decimal.Decimal, opts ...Option) ([]decimal.Decimal, [][]decimal.Decimal, error) {
	o := gatherOptions(opts...)
	if _, err := squareDims(m); err != nil {
		return nil, nil, eigenErrorf(opDecomposeDecimal, err)
	}
	if !symmetricGeneric(m, decimalOps) {
		return nil, nil, eigenErrorf(opDecomposeDecimal, ErrNotSymmetric)
	}

	values, vectors, err := diagGeneric(cloneDecimal(m), decimalOps, o)
	if err != nil {
		return nil, nil, eigenErrorf(opDecomposeDecimal, err)
	}

	return values, vectors, nil
}

// DecomposeRat computes the full eigen-decomposition of a symmetric rational
// matrix on the generic path. Ring operations are exact; rotation angles
// round-trip through float64 (see ratArithmetic). A nil *big.Rat cell is
// rejected as ErrUnsupportedType. Contract matches DecomposeFloat64.
func DecomposeRat(m [][]*big.Rat, opts ...Option) ([]*big.Rat, [][]*big.Rat, error) {
	o := gatherOptions(opts...)
	if _, err := squareDims(m); err != nil {
		return nil, nil, eigenErrorf(opDecomposeRat, err)
	}
	x, err := cloneRat(m) // deep copy; also screens nil cells
	if err != nil {
		return nil, nil, eigenErrorf(opDecomposeRat, err)
	}
	if !symmetricGeneric(x, ratOps) {
		return nil, nil, eigenErrorf(opDecomposeRat, ErrNotSymmetric)
	}

	values, vectors, err := diagGeneric(x, ratOps, o)
	if err != nil {
		return nil, nil, eigenErrorf(opDecomposeRat, err)
	}

	return values, vectors, nil
}

// ---------- Dynamic facade ----------

// Decompose validates a Container, classifies its element family and routes
// to the matching engine: floating → native fast path, decimal/rational →
// generic path over the family's Arithmetic provider.
//
// Implementation:
//   - Stage 1: nil/shape checks via Size, snapshot via ToArray, family
//     classification (fail-fast on mixed or unsupported elements).
//   - Stage 2: convert the snapshot to the family's typed matrix (this is
//     the engine's private working copy), verify symmetry with the family's
//     equality, run the matching driver.
//   - Stage 3: assemble the Decomposition {Family, Values, Vectors}.
//
// Inputs:
//   - c: square Container of one numeric family.
//   - opts: WithPrecision / WithEpsilon / WithMaxRotations.
//
// Returns:
//   - *Decomposition: ascending Values plus a Grid whose k-th column is the
//     eigenvector for Values[k].
//
// Errors:
//   - ErrNilContainer, ErrBadDimensions, ErrBadShape, ErrUnsupportedType,
//     ErrMixedTypes, ErrNotSymmetric, ErrNoConvergence (capped runs only).
//
// Determinism:
//   - Fully deterministic for fixed input, family and options.
//
// Complexity:
//   - Time O(n²·R), Space O(n²).
//
// AI-Hints:
//   - Prefer the typed facades when the family is statically known; this
//     entry point pays one classification scan and per-cell boxing.
func Decompose(c Container, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)

	// Shape checks before any numeric work.
	if c == nil {
		return nil, eigenErrorf(opDecompose, ErrNilContainer)
	}
	rows, cols := c.Size()
	if rows <= 0 || cols <= 0 {
		return nil, eigenErrorf(opDecompose, ErrBadDimensions)
	}
	if rows != cols {
		return nil, eigenErrorf(opDecompose, ErrBadShape)
	}
	cells := c.ToArray()
	n, err := squareDims(cells)
	if err != nil {
		return nil, eigenErrorf(opDecompose, err) // container misreported its shape
	}
	if n != rows {
		// Snapshot is square but disagrees with Size: still a misreport.
		return nil, eigenErrorf(opDecompose, ErrBadShape)
	}

	// Family classification and per-family dispatch.
	switch Classify(cells) {
	case FamilyFloating:
		x := floatCells(cells)
		if !symmetricFloat(x, o.eps) {
			return nil, eigenErrorf(opDecompose, ErrNotSymmetric)
		}
		values, vectors, err := diagFloat(x, o)
		if err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
		return assemble(FamilyFloating, values, vectors), nil

	case FamilyDecimal:
		x := decimalCells(cells)
		if !symmetricGeneric(x, decimalOps) {
			return nil, eigenErrorf(opDecompose, ErrNotSymmetric)
		}
		values, vectors, err := diagGeneric(x, decimalOps, o)
		if err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
		return assemble(FamilyDecimal, values, vectors), nil

	case FamilyRational:
		x := ratCells(cells)
		if !symmetricGeneric(x, ratOps) {
			return nil, eigenErrorf(opDecompose, ErrNotSymmetric)
		}
		values, vectors, err := diagGeneric(x, ratOps, o)
		if err != nil {
			return nil, eigenErrorf(opDecompose, err)
		}
		return assemble(FamilyRational, values, vectors), nil

	case FamilyMixed:
		return nil, eigenErrorf(opDecompose, ErrMixedTypes)

	default:
		return nil, eigenErrorf(opDecompose, ErrUnsupportedType)
	}
}

// ---------- Buffer helpers ----------

// identityFloat allocates an n×n float64 identity matrix.
func identityFloat(n int) [][]float64 {
	s := make([][]float64, n)
	for i := 0; i < n; i++ {
		s[i] = make([]float64, n)
		s[i][i] = 1.0
	}

	return s
}

// identityGeneric allocates an n×n identity matrix in the family T.
func identityGeneric[T any](n int, ar Arithmetic[T]) [][]T {
	s := make([][]T, n)
	var i, j int
	for i = 0; i < n; i++ {
		s[i] = make([]T, n)
		for j = 0; j < n; j++ {
			if i == j {
				s[i][j] = ar.One()
			} else {
				s[i][j] = ar.Zero()
			}
		}
	}

	return s
}

// cloneFloat deep-copies a float64 matrix.
func cloneFloat(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = make([]float64, len(m[i]))
		copy(out[i], m[i])
	}

	return out
}

// cloneDecimal deep-copies a decimal matrix (cells are immutable values,
// so a row copy is a deep copy).
func cloneDecimal(m [][]decimal.Decimal) [][]decimal.Decimal {
	out := make([][]decimal.Decimal, len(m))
	for i := range m {
		out[i] = make([]decimal.Decimal, len(m[i]))
		copy(out[i], m[i])
	}

	return out
}

// cloneRat deep-copies a rational matrix cell by cell; *big.Rat is mutable,
// so sharing pointers with the caller would alias the working matrix.
// Returns ErrUnsupportedType on a nil cell.
func cloneRat(m [][]*big.Rat) ([][]*big.Rat, error) {
	out := make([][]*big.Rat, len(m))
	var i, j int
	for i = range m {
		out[i] = make([]*big.Rat, len(m[i]))
		for j = range m[i] {
			if m[i][j] == nil {
				return nil, ErrUnsupportedType
			}
			out[i][j] = new(big.Rat).Set(m[i][j])
		}
	}

	return out, nil
}

// floatCells converts a classified floating snapshot to a typed matrix.
// The result is a fresh buffer and doubles as the engine's working copy.
func floatCells(cells [][]any) [][]float64 {
	out := make([][]float64, len(cells))
	var i, j int
	for i = range cells {
		out[i] = make([]float64, len(cells[i]))
		for j = range cells[i] {
			out[i][j] = cells[i][j].(float64)
		}
	}

	return out
}

// decimalCells converts a classified decimal snapshot to a typed matrix.
func decimalCells(cells [][]any) [][]decimal.Decimal {
	out := make([][]decimal.Decimal, len(cells))
	var i, j int
	for i = range cells {
		out[i] = make([]decimal.Decimal, len(cells[i]))
		for j = range cells[i] {
			out[i][j] = cells[i][j].(decimal.Decimal)
		}
	}

	return out
}

// ratCells converts a classified rational snapshot to a typed matrix,
// deep-copying every cell (nil cells were screened by Classify).
func ratCells(cells [][]any) [][]*big.Rat {
	out := make([][]*big.Rat, len(cells))
	var i, j int
	for i = range cells {
		out[i] = make([]*big.Rat, len(cells[i]))
		for j = range cells[i] {
			out[i][j] = new(big.Rat).Set(cells[i][j].(*big.Rat))
		}
	}

	return out
}

// assemble boxes a typed result into the dynamic Decomposition shape.
func assemble[T any](fam Family, values []T, vectors [][]T) *Decomposition {
	n := len(values)
	boxed := make([]any, n)
	for i := 0; i < n; i++ {
		boxed[i] = values[i]
	}

	g := &Grid{r: n, c: n, cells: make([]any, n*n)}
	var r, col int
	for r = 0; r < n; r++ {
		for col = 0; col < n; col++ {
			g.cells[r*n+col] = vectors[r][col]
		}
	}

	return &Decomposition{Family: fam, Values: boxed, Vectors: g}
}
