// SPDX-License-Identifier: MIT

// Package eigen computes the full eigenvalue decomposition of real symmetric
// matrices using the Jacobi rotation method, across three numeric families.
//
// 🚀 What does it do?
//
//	Given a square symmetric matrix, eigen returns every eigenvalue in
//	ascending order together with an orthogonal matrix whose k-th column is
//	the eigenvector of the k-th eigenvalue. The same iterative engine serves:
//	  • float64          — native fast path (DecomposeFloat64)
//	  • decimal.Decimal  — arbitrary precision (DecomposeDecimal)
//	  • *big.Rat         — exact rationals (DecomposeRat)
//	  • mixed dynamic containers — routed by family (Decompose + Grid)
//
// ⚙️ Algorithm:
//
//	Repeatedly pick the largest-magnitude off-diagonal entry (the pivot),
//	compute the Givens rotation angle that annihilates it, and apply the
//	similarity transform to the working matrix while accumulating the same
//	rotation into an orthogonal transform S. The loop terminates when the
//	maximal off-diagonal magnitude drops below |precision/N| (precision
//	defaults to 1e-12). Eigenvalues are then read off the diagonal and
//	ordered ascending by repeated minimum extraction, with the columns of S
//	permuted in lockstep.
//
// ✨ Guarantees:
//
//   - values[k] ≤ values[k+1] for all k
//   - sum(values) ≈ trace(input) (trace is invariant under rotations)
//   - vectorsᵗ·vectors ≈ I (S stays orthogonal by construction)
//   - vectors·diag(values)·vectorsᵗ ≈ input (reconstruction law)
//   - fully deterministic: fixed pivot scan order, fixed tie-breaks
//
// ⚠️ Caveats:
//
//   - By default there is no iteration cap; pathological inputs may spin.
//     Opt into a bound with WithMaxRotations(n) — the engine then fails with
//     ErrNoConvergence instead of looping.
//   - The degenerate-diagonal test (|ajj−aii| ≤ 1e-14 ⇒ θ = π/4) is always
//     evaluated in native float64, for every family. See degenerateGapTol.
//
// Usage:
//
//	import "github.com/katalvlaran/spectral/eigen"
//
//	vals, vecs, err := eigen.DecomposeFloat64(m, eigen.WithPrecision(1e-10))
//
// Complexity: O(N²) per pivot scan, O(N) per rotation row update; the total
// rotation count R is data-dependent, so a full decomposition is O(N²·R).
package eigen
