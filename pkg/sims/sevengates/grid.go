// Package sevengates implements the seven-band toroidal automaton: every cell
// holds an energy band in [0, Bands) and moves up, down or stays put
// depending on how many of its four orthogonal neighbours are active.
package sevengates

import (
	"errors"
	"fmt"

	"seven-gates/internal/core"
)

const (
	// Bands is the number of discrete energy bands a cell can hold.
	Bands = 7
	// ActiveThreshold is the lowest band that counts as active.
	ActiveThreshold = 4
)

var (
	// ErrInvalidDimensions reports a non-positive width or height.
	ErrInvalidDimensions = errors.New("sevengates: width and height must be positive")
	// ErrRaggedRows reports rows that do not match the declared dimensions.
	ErrRaggedRows = errors.New("sevengates: rows do not match grid dimensions")
	// ErrCellOutOfRange reports a cell value outside [0, Bands).
	ErrCellOutOfRange = errors.New("sevengates: cell value out of range")
	// ErrNegativeSteps reports a negative step count.
	ErrNegativeSteps = errors.New("sevengates: steps must not be negative")
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid is an immutable snapshot of the automaton. Copies of a Grid share
// storage, which is safe because nothing writes to it after construction.
// The zero Grid is not usable; build one with New or Random.
type Grid struct {
	cells *core.ByteGrid
}

// New builds a grid from explicit rows. rows must contain exactly height
// rows of width values, each in [0, Bands).
func New(width, height int, rows [][]int) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	if len(rows) != height {
		return Grid{}, fmt.Errorf("got %d rows for height %d: %w", len(rows), height, ErrRaggedRows)
	}
	cells := core.NewByteGrid(width, height)
	for r, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("row %d has %d cells for width %d: %w", r, len(row), width, ErrRaggedRows)
		}
		for c, v := range row {
			if v < 0 || v >= Bands {
				return Grid{}, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrCellOutOfRange)
			}
			cells.Set(c, r, uint8(v))
		}
	}
	return Grid{cells: cells}, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g Grid) Height() int { return g.cells.H }

// Size returns the grid dimensions.
func (g Grid) Size() core.Size { return core.Size{W: g.cells.W, H: g.cells.H} }

// At returns the band stored at (row, col). Coordinates must be in range.
func (g Grid) At(row, col int) int { return int(g.cells.At(col, row)) }

// Rows returns a copy of the cells as height rows of width values.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.cells.H)
	for r := range rows {
		src := g.cells.Row(r)
		row := make([]int, len(src))
		for c, v := range src {
			row[c] = int(v)
		}
		rows[r] = row
	}
	return rows
}

// Cells returns a row-major copy of the cell values.
func (g Grid) Cells() []uint8 {
	return append([]uint8(nil), g.cells.Cells()...)
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.cells.W != o.cells.W || g.cells.H != o.cells.H {
		return false
	}
	a, b := g.cells.Cells(), o.cells.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ActiveCount returns the number of active cells in the grid.
func (g Grid) ActiveCount() int {
	n := 0
	for _, v := range g.cells.Cells() {
		if IsActive(int(v)) {
			n++
		}
	}
	return n
}
