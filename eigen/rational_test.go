// Package eigen_test: rational-family decomposition tests. Ring arithmetic
// over *big.Rat is exact; rotation trigonometry round-trips through float64,
// so rotated spectra are asserted with a numeric tolerance while
// rotation-free paths (diagonal inputs) are asserted exactly.
package eigen_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/eigen"
)

// rat is a test shorthand for rational literals a/b.
func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

// ratF converts a *big.Rat to float64 for tolerance assertions.
func ratF(r *big.Rat) float64 {
	f, _ := r.Float64()

	return f
}

// TestDecomposeRat_Indefinite checks [[0,1],[1,0]]: one 45° rotation yields
// eigenvalues -1 and +1 (up to the float64 trig round-trip).
func TestDecomposeRat_Indefinite(t *testing.T) {
	t.Parallel()

	m := [][]*big.Rat{
		{rat(0, 1), rat(1, 1)},
		{rat(1, 1), rat(0, 1)},
	}
	values, vectors, err := eigen.DecomposeRat(m)
	require.NoError(t, err)
	require.Len(t, values, 2)

	assert.InDelta(t, -1.0, ratF(values[0]), 1e-12, "smallest eigenvalue")
	assert.InDelta(t, 1.0, ratF(values[1]), 1e-12, "largest eigenvalue")

	// Orthonormal columns within the trig round-trip error.
	h := 0.7071067811865476
	assert.InDelta(t, h, ratF(vectors[0][0]), 1e-12)
	assert.InDelta(t, -h, ratF(vectors[1][0]), 1e-12)
	assert.InDelta(t, h, ratF(vectors[0][1]), 1e-12)
	assert.InDelta(t, h, ratF(vectors[1][1]), 1e-12)
}

// TestDecomposeRat_DiagonalIsExact verifies the rotation-free path end to
// end in exact arithmetic: diag(1/3, 1/6) sorts to [1/6, 1/3] with the
// columns of the identity swapped, all compared with Cmp.
func TestDecomposeRat_DiagonalIsExact(t *testing.T) {
	t.Parallel()

	m := [][]*big.Rat{
		{rat(1, 3), rat(0, 1)},
		{rat(0, 1), rat(1, 6)},
	}
	values, vectors, err := eigen.DecomposeRat(m)
	require.NoError(t, err)

	assert.Zero(t, values[0].Cmp(rat(1, 6)), "values[0] = 1/6 exactly")
	assert.Zero(t, values[1].Cmp(rat(1, 3)), "values[1] = 1/3 exactly")

	want := [][]*big.Rat{
		{rat(0, 1), rat(1, 1)},
		{rat(1, 1), rat(0, 1)},
	}
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			assert.Zero(t, vectors[i][j].Cmp(want[i][j]), "vectors[%d][%d]", i, j)
		}
	}
}

// TestDecomposeRat_TraceInvariant checks that the eigenvalue sum matches the
// trace on a dense rational 3×3.
func TestDecomposeRat_TraceInvariant(t *testing.T) {
	t.Parallel()

	m := [][]*big.Rat{
		{rat(2, 1), rat(1, 2), rat(0, 1)},
		{rat(1, 2), rat(3, 1), rat(1, 4)},
		{rat(0, 1), rat(1, 4), rat(1, 1)},
	}
	values, _, err := eigen.DecomposeRat(m)
	require.NoError(t, err)

	sum := new(big.Rat)
	for _, v := range values {
		sum.Add(sum, v)
	}
	assert.InDelta(t, 6.0, ratF(sum), 1e-10, "eigenvalue sum equals trace")

	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, values[i-1].Cmp(values[i]), 0, "ascending at %d", i)
	}
}

// TestDecomposeRat_ExactSymmetryGate ensures rational symmetry is exact:
// 1/3 versus 333333.../1000000... style near-misses are rejected.
func TestDecomposeRat_ExactSymmetryGate(t *testing.T) {
	t.Parallel()

	m := [][]*big.Rat{
		{rat(1, 1), rat(1, 3)},
		{rat(333333, 1000000), rat(1, 1)},
	}
	_, _, err := eigen.DecomposeRat(m)
	assert.ErrorIs(t, err, eigen.ErrNotSymmetric, "rational symmetry is exact")
}

// TestDecomposeRat_NilCell verifies that a nil *big.Rat cell is rejected as
// an unsupported element before any arithmetic runs.
func TestDecomposeRat_NilCell(t *testing.T) {
	t.Parallel()

	m := [][]*big.Rat{
		{rat(1, 1), nil},
		{nil, rat(1, 1)},
	}
	_, _, err := eigen.DecomposeRat(m)
	assert.ErrorIs(t, err, eigen.ErrUnsupportedType, "nil cell is not a number")
}

// TestDecomposeRat_Errors walks the shape error surface.
func TestDecomposeRat_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := eigen.DecomposeRat([][]*big.Rat{})
	assert.ErrorIs(t, err, eigen.ErrBadDimensions, "empty input")

	_, _, err = eigen.DecomposeRat([][]*big.Rat{{rat(1, 1)}, {rat(2, 1)}})
	assert.ErrorIs(t, err, eigen.ErrBadShape, "2x1 input")
}

// TestDecomposeRat_InputNotMutated ensures the deep clone isolates the
// caller's cells: *big.Rat is mutable, so aliasing would corrupt the input.
func TestDecomposeRat_InputNotMutated(t *testing.T) {
	t.Parallel()

	m := [][]*big.Rat{
		{rat(2, 1), rat(1, 1)},
		{rat(1, 1), rat(2, 1)},
	}
	_, _, err := eigen.DecomposeRat(m)
	require.NoError(t, err)

	assert.Zero(t, m[0][0].Cmp(rat(2, 1)), "m[0][0] untouched")
	assert.Zero(t, m[0][1].Cmp(rat(1, 1)), "m[0][1] untouched")
	assert.Zero(t, m[1][0].Cmp(rat(1, 1)), "m[1][0] untouched")
	assert.Zero(t, m[1][1].Cmp(rat(2, 1)), "m[1][1] untouched")
}
