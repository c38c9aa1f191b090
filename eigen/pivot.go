// SPDX-License-Identifier: MIT

// Package eigen: pivot selection. The Jacobi loop re-runs one of these scans
// after every rotation, making them the O(N²) heartbeat of the engine.
package eigen

import "math"

// pivotFloat scans the strict upper triangle (i < j) in row-major order and
// returns the entry with the strictly greatest |x[i][j]| seen so far.
// Tie-break: strict `>` comparison, so equal magnitudes keep the earliest
// (i, j) in scan order.
//
// Determinism: fixed i→j order; identical inputs yield identical pivots.
// Complexity: Time O(n²), Space O(1).
func pivotFloat(x [][]float64) Pivot {
	n := len(x)
	if n < 2 {
		return Pivot{} // no off-diagonal entries to target
	}

	// Seed with the first scanned entry, then compare strictly.
	best := Pivot{Row: 0, Col: 1, Magnitude: math.Abs(x[0][1])}
	var i, j int    // loop iterators
	var off float64 // |x[i][j]| temporary
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if i == 0 && j == 1 {
				continue // seed already consumed
			}
			off = math.Abs(x[i][j])
			if off > best.Magnitude {
				best = Pivot{Row: i, Col: j, Magnitude: off}
			}
		}
	}

	return best
}

// pivotGeneric is pivotFloat parameterized over the Arithmetic provider:
// magnitudes are compared with the family's Abs/Cmp so arbitrary-precision
// inputs are never truncated during selection. Caller guarantees n ≥ 2.
//
// Complexity: Time O(n²) comparisons, Space O(1) beyond the returned scalar.
func pivotGeneric[T any](x [][]T, ar Arithmetic[T]) (p, q int, mag T) {
	n := len(x)
	p, q = 0, 1
	mag = ar.Abs(x[0][1])

	var i, j int // loop iterators
	var off T    // |x[i][j]| temporary
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if i == 0 && j == 1 {
				continue // seed already consumed
			}
			off = ar.Abs(x[i][j])
			if ar.Cmp(off, mag) > 0 {
				p, q, mag = i, j, off
			}
		}
	}

	return p, q, mag
}
