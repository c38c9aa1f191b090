// Package spectral is a small, deterministic eigen-decomposition toolkit
// for real symmetric matrices — one engine, three numeric families.
//
// 🚀 What is spectral?
//
//	A pure-Go library that diagonalizes symmetric matrices with the classic
//	Jacobi rotation method and keeps the *numeric family* of your data intact:
//	  • float64            — fast native path
//	  • decimal.Decimal    — arbitrary-precision decimals (shopspring/decimal)
//	  • *big.Rat           — exact rationals (math/big)
//
// ✨ Why choose spectral?
//
//   - Full spectrum, always — eigenvalues ascending + orthogonal eigenvectors
//   - Deterministic — fixed pivot scan order, reproducible rotation sequence
//   - Family-faithful — decimal and rational inputs never pass through float64
//     inside the ring operations
//   - Pure Go — no cgo, tiny dependency surface
//
// Everything lives in one subpackage:
//
//	eigen/ — validator, pivot selection, rotation engine, convergence loop,
//	         spectrum sorting and the Grid container boundary
//
// Quick example:
//
//	values, vectors, err := eigen.DecomposeFloat64([][]float64{
//	    {2, 1},
//	    {1, 2},
//	})
//	// values  = [1, 3]
//	// vectors = columns are the matching unit eigenvectors
//
// See eigen/example_test.go for runnable examples and the package docs in
// eigen/doc.go for the full algorithm contract.
package spectral
