// SPDX-License-Identifier: MIT

// Package eigen: spectrum ordering. Deliberately NOT a general sort — the
// engine reproduces repeated-minimum extraction so that equal eigenvalues
// keep their original relative order (the earliest-indexed remaining
// candidate is always extracted first).
package eigen

// extractionOrder returns the indices of e in ascending value order using
// selection-by-extraction: for every output slot, the minimum among the
// remaining candidates is removed and appended. The strict `less` comparison
// guarantees that ties resolve to the earliest remaining index.
//
// Determinism: fixed scan order over the remaining set.
// Complexity: Time O(n²), Space O(n).
func extractionOrder[T any](e []T, less func(a, b T) bool) []int {
	n := len(e)
	remaining := make([]int, n) // candidate indices, in original order
	for i := range remaining {
		remaining[i] = i
	}

	order := make([]int, 0, n)
	var k, min int // scan iterator and current minimum position
	for len(remaining) > 0 {
		min = 0
		for k = 1; k < len(remaining); k++ {
			if less(e[remaining[k]], e[remaining[min]]) {
				min = k // strictly smaller only: earliest index wins ties
			}
		}
		order = append(order, remaining[min])
		remaining = append(remaining[:min], remaining[min+1:]...) // extract
	}

	return order
}

// applySpectrumOrder materializes the sorted eigenvalue sequence and the
// column-permuted transform: output column i of vectors is source column
// order[i] of s, keeping eigenvalue/eigenvector correspondence intact.
//
// Complexity: Time O(n²), Space O(n²) for the fresh result buffers.
func applySpectrumOrder[T any](e []T, s [][]T, order []int) (values []T, vectors [][]T) {
	n := len(e)
	values = make([]T, n)
	vectors = make([][]T, n)
	var r int
	for r = 0; r < n; r++ {
		vectors[r] = make([]T, n)
	}
	for outCol, src := range order {
		values[outCol] = e[src]
		for r = 0; r < n; r++ {
			vectors[r][outCol] = s[r][src] // move the matching column
		}
	}

	return values, vectors
}
