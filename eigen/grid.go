// SPDX-License-Identifier: MIT

// Package eigen: Grid is the concrete, row-major implementation of the
// Container boundary, storing per-family cells in a flat slice for cache
// friendliness. It is numeric-family-agnostic storage: classification and
// symmetry checks happen in the decomposition facades, not here.
package eigen

import (
	"fmt"
	"math"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major matrix of scalar cells.
// r is rows, c is columns, and cells holds r*c elements in row-major order.
// Cells are expected to hold float64, decimal.Decimal or *big.Rat values;
// Grid itself only enforces the finite-float numeric policy on ingestion.
type Grid struct {
	r, c  int   // number of rows and columns
	cells []any // flat backing storage, length == r*c
}

// NewGrid creates an r×c Grid with nil cells.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Grid or ErrBadDimensions.
// Complexity: O(r*c) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	// Allocate flat slice
	cells := make([]any, rows*cols)

	// Return initialized Grid
	return &Grid{r: rows, c: cols, cells: cells}, nil
}

// NewGridFrom builds a Grid from a 2D literal, copying every cell.
// Stage 1 (Validate): non-empty, rectangular, finite floats.
// Stage 2 (Execute): copy rows into flat storage.
// Returns ErrBadDimensions, ErrRagged or ErrNaNInf.
// Complexity: O(r*c).
func NewGridFrom(rows [][]any) (*Grid, error) {
	// Validate outer dimension
	r := len(rows)
	if r == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	c := len(rows[0])

	g := &Grid{r: r, c: c, cells: make([]any, r*c)}
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		// Reject ragged input before copying the row.
		if len(rows[i]) != c {
			return nil, ErrRagged
		}
		for j = 0; j < c; j++ {
			// Numeric policy: float cells must be finite.
			if f, ok := rows[i][j].(float64); ok && isNonFinite(f) {
				return nil, ErrNaNInf
			}
			g.cells[i*c+j] = rows[i][j]
		}
	}

	return g, nil
}

// Size returns the row and column counts.
// Complexity: O(1).
func (g *Grid) Size() (rows, cols int) {
	return g.r, g.c // return stored counts
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= g.r {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= g.c {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*g.c + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (any, error) {
	// Compute flat index or error
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	// Return stored value
	return g.cells[idx], nil
}

// Set assigns value v at (row, col), enforcing the finite-float policy.
// Returns ErrOutOfRange or ErrNaNInf.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v any) error {
	// Compute flat index or error
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Numeric policy: float cells must be finite.
	if f, ok := v.(float64); ok && isNonFinite(f) {
		return gridErrorf("Set", row, col, ErrNaNInf)
	}
	// Assign value
	g.cells[idx] = v

	return nil
}

// ToArray returns a fresh 2D snapshot of the cells. Mutating the returned
// rows never affects the Grid. Note: *big.Rat cells are shared pointers —
// the decomposition facades deep-copy them before mutating.
// Complexity: O(r*c).
func (g *Grid) ToArray() [][]any {
	out := make([][]any, g.r)
	var i int
	for i = 0; i < g.r; i++ {
		row := make([]any, g.c)
		copy(row, g.cells[i*g.c:(i+1)*g.c])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy of the Grid (cell values are copied shallowly;
// see the ToArray note on *big.Rat sharing).
// Complexity: O(r*c).
func (g *Grid) Clone() *Grid {
	// Allocate new slice for cell copy
	cp := make([]any, len(g.cells))
	copy(cp, g.cells)

	return &Grid{r: g.r, c: g.c, cells: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (g *Grid) String() string {
	var s string
	var i, j int
	for i = 0; i < g.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < g.c; j++ { // iterate over columns
			s += fmt.Sprintf("%v", g.cells[i*g.c+j])
			if j < g.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}

// isNonFinite reports whether f is NaN or ±Inf.
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
