// Package eigen_test: Grid container tests — construction, indexing, the
// finite-float numeric policy and snapshot isolation.
package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/eigen"
)

// TestNewGrid_Validation rejects non-positive dimensions and accepts the rest.
func TestNewGrid_Validation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"1x1", 1, 1, false},
		{"3x5", 3, 5, false},
		{"zero rows", 0, 3, true},
		{"zero cols", 3, 0, true},
		{"negative", -1, 2, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := eigen.NewGrid(tc.rows, tc.cols)
			if tc.wantErr {
				assert.ErrorIs(t, err, eigen.ErrBadDimensions)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			rows, cols := g.Size()
			assert.Equal(t, tc.rows, rows)
			assert.Equal(t, tc.cols, cols)
		})
	}
}

// TestNewGridFrom_Validation covers the literal constructor: empty input,
// ragged rows and the finite-float policy.
func TestNewGridFrom_Validation(t *testing.T) {
	t.Parallel()

	_, err := eigen.NewGridFrom([][]any{})
	assert.ErrorIs(t, err, eigen.ErrBadDimensions, "empty literal")

	_, err = eigen.NewGridFrom([][]any{{}})
	assert.ErrorIs(t, err, eigen.ErrBadDimensions, "empty first row")

	_, err = eigen.NewGridFrom([][]any{{1.0, 2.0}, {3.0}})
	assert.ErrorIs(t, err, eigen.ErrRagged, "ragged rows")

	_, err = eigen.NewGridFrom([][]any{{1.0, math.NaN()}, {2.0, 1.0}})
	assert.ErrorIs(t, err, eigen.ErrNaNInf, "NaN cell")

	_, err = eigen.NewGridFrom([][]any{{math.Inf(1)}})
	assert.ErrorIs(t, err, eigen.ErrNaNInf, "+Inf cell")
}

// TestGrid_AtSet exercises in-range and out-of-range indexing plus the
// finite-float policy on Set.
func TestGrid_AtSet(t *testing.T) {
	t.Parallel()

	g, err := eigen.NewGrid(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.Set(0, 1, 3.5))
	v, err := g.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = g.At(2, 0)
	assert.ErrorIs(t, err, eigen.ErrOutOfRange, "row overflow")
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, eigen.ErrOutOfRange, "negative column")

	err = g.Set(5, 5, 1.0)
	assert.ErrorIs(t, err, eigen.ErrOutOfRange, "Set out of range")

	err = g.Set(0, 0, math.NaN())
	assert.ErrorIs(t, err, eigen.ErrNaNInf, "Set rejects NaN")
	err = g.Set(0, 0, math.Inf(-1))
	assert.ErrorIs(t, err, eigen.ErrNaNInf, "Set rejects -Inf")
}

// TestGrid_ToArrayIsolation confirms the snapshot is fresh: mutating the
// returned rows leaves the Grid intact.
func TestGrid_ToArrayIsolation(t *testing.T) {
	t.Parallel()

	g, err := eigen.NewGridFrom([][]any{
		{1.0, 2.0},
		{2.0, 4.0},
	})
	require.NoError(t, err)

	snap := g.ToArray()
	snap[0][0] = 99.0

	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "snapshot writes must not reach the Grid")
}

// TestGrid_Clone verifies deep copy semantics of the backing storage.
func TestGrid_Clone(t *testing.T) {
	t.Parallel()

	g, err := eigen.NewGridFrom([][]any{{1.0, 2.0}, {2.0, 1.0}})
	require.NoError(t, err)

	cp := g.Clone()
	require.NoError(t, cp.Set(0, 0, 42.0))

	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone writes must not reach the original")
}

// TestGrid_String smoke-tests the debug rendering.
func TestGrid_String(t *testing.T) {
	t.Parallel()

	g, err := eigen.NewGridFrom([][]any{{1.0, 2.0}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n", g.String())
}
