// SPDX-License-Identifier: MIT

// Package eigen: the rotation engine. Two instantiations share one control
// flow: rotateFloat on raw float64 (fast path) and rotateGeneric over an
// Arithmetic provider (decimal, rational). Both read a consistent snapshot
// of the pivot rows before writing, so no update ever consumes an
// already-rotated entry within the same step.
package eigen

import "math"

// degenerateGapTol is the diagonal-gap threshold below which the rotation
// angle degenerates to π/4. The test is ALWAYS evaluated in native float64,
// for every numeric family: lifting it into the family would change behavior
// on near-degenerate arbitrary-precision inputs.
const degenerateGapTol = 1e-14

// angleFloat returns the Jacobi rotation angle θ annihilating pivot aij:
// π/4 when the diagonal gap is degenerate, 0.5·atan(2·aij/(ajj−aii)) otherwise.
// Complexity: O(1).
func angleFloat(aii, ajj, aij float64) float64 {
	if math.Abs(ajj-aii) <= degenerateGapTol {
		return math.Pi / 4 // near-equal diagonal: fixed 45° rotation
	}

	return 0.5 * math.Atan(2*aij/(ajj-aii))
}

// angleGeneric is angleFloat in the active family's arithmetic. Only the
// degeneracy test projects to float64 (see degenerateGapTol); the angle
// itself is computed with the provider's Sub/Mul/Div/Atan, and the
// degenerate π/4 is obtained family-pure as atan(1).
// Complexity: O(1) provider calls.
func angleGeneric[T any](ar Arithmetic[T], aii, ajj, aij T) T {
	gap := ar.Sub(ajj, aii)
	if math.Abs(ar.Float64(gap)) <= degenerateGapTol {
		return ar.Atan(ar.One()) // atan(1) = π/4 in the active family
	}
	two := ar.Add(ar.One(), ar.One())

	// θ = atan(2·aij / (ajj − aii)) / 2
	return ar.Div(ar.Atan(ar.Div(ar.Mul(two, aij), gap)), two)
}

// rotateFloat applies the Givens rotation with angle theta at pivot (p, q)
// to the working matrix x and accumulates it into the transform s.
//
// Implementation:
//   - Stage 1: snapshot rows p and q into caller-owned scratch ri, rj.
//   - Stage 2: write the new diagonal, zero the pivot pair, update every
//     other row/column pair symmetrically from the snapshot.
//   - Stage 3: rotate columns p and q of s (read both, then write both).
//
// Behavior highlights:
//   - x stays symmetric and s stays orthogonal by construction.
//   - trace(x) is preserved: the two diagonal updates sum to aii + ajj.
//
// Inputs:
//   - x: N×N working matrix (mutated in place).
//   - s: N×N accumulated transform (mutated in place).
//   - p, q: pivot indices, p < q.
//   - theta: rotation angle from angleFloat.
//   - ri, rj: scratch rows of length N (reused across rotations by the loop).
//
// Determinism:
//   - Fixed k-order updates; no data-dependent branches beyond the k∈{p,q} skip.
//
// Complexity:
//   - Time O(n), Space O(1) beyond the scratch rows.
func rotateFloat(x, s [][]float64, p, q int, theta float64, ri, rj []float64) {
	n := len(x)
	c := math.Cos(theta)
	sn := math.Sin(theta)

	// Snapshot the two affected rows before any write.
	copy(ri, x[p])
	copy(rj, x[q])
	app, aqq, apq := ri[p], rj[q], ri[q]

	// New diagonal and annihilated pivot pair.
	x[p][p] = c*c*app - 2*c*sn*apq + sn*sn*aqq
	x[q][q] = sn*sn*app + 2*c*sn*apq + c*c*aqq
	x[p][q], x[q][p] = 0, 0

	// Remaining row/column pairs, mirrored symmetrically.
	var k int
	var xpk, xqk float64
	for k = 0; k < n; k++ {
		if k == p || k == q {
			continue
		}
		xpk = c*ri[k] - sn*rj[k]
		xqk = sn*ri[k] + c*rj[k]
		x[p][k], x[k][p] = xpk, xpk
		x[q][k], x[k][q] = xqk, xqk
	}

	// Accumulate the rotation into columns p and q of s.
	var skp, skq float64
	for k = 0; k < n; k++ {
		skp = c*s[k][p] - sn*s[k][q]
		skq = sn*s[k][p] + c*s[k][q]
		s[k][p], s[k][q] = skp, skq
	}
}

// rotateGeneric is rotateFloat parameterized over the Arithmetic provider.
// Identical control flow; every scalar operation goes through the family's
// pure methods, and the annihilated pair is set to the family's exact zero.
//
// Complexity: Time O(n) provider calls, Space O(1) beyond the scratch rows.
func rotateGeneric[T any](ar Arithmetic[T], x, s [][]T, p, q int, theta T, ri, rj []T) {
	n := len(x)
	c := ar.Cos(theta)
	sn := ar.Sin(theta)
	cc := ar.Mul(c, c)
	ss := ar.Mul(sn, sn)
	cs2 := ar.Add(ar.Mul(c, sn), ar.Mul(c, sn)) // 2·c·s

	// Snapshot the two affected rows before any write.
	copy(ri, x[p])
	copy(rj, x[q])
	app, aqq, apq := ri[p], rj[q], ri[q]

	// New diagonal and annihilated pivot pair.
	x[p][p] = ar.Add(ar.Sub(ar.Mul(cc, app), ar.Mul(cs2, apq)), ar.Mul(ss, aqq))
	x[q][q] = ar.Add(ar.Add(ar.Mul(ss, app), ar.Mul(cs2, apq)), ar.Mul(cc, aqq))
	x[p][q], x[q][p] = ar.Zero(), ar.Zero()

	// Remaining row/column pairs, mirrored symmetrically.
	var k int
	var xpk, xqk T
	for k = 0; k < n; k++ {
		if k == p || k == q {
			continue
		}
		xpk = ar.Sub(ar.Mul(c, ri[k]), ar.Mul(sn, rj[k]))
		xqk = ar.Add(ar.Mul(sn, ri[k]), ar.Mul(c, rj[k]))
		x[p][k], x[k][p] = xpk, xpk
		x[q][k], x[k][q] = xqk, xqk
	}

	// Accumulate the rotation into columns p and q of s.
	var skp, skq T
	for k = 0; k < n; k++ {
		skp = ar.Sub(ar.Mul(c, s[k][p]), ar.Mul(sn, s[k][q]))
		skq = ar.Add(ar.Mul(sn, s[k][p]), ar.Mul(c, s[k][q]))
		s[k][p], s[k][q] = skp, skq
	}
}
