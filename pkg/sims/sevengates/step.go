package sevengates

import (
	"fmt"

	"seven-gates/internal/core"
)

var neighborOffsets = [4]Coord{
	{Row: -1, Col: 0}, // north
	{Row: 1, Col: 0},  // south
	{Row: 0, Col: -1}, // west
	{Row: 0, Col: 1},  // east
}

// Wrap maps any (row, col) onto the torus.
func (g Grid) Wrap(row, col int) Coord {
	x, y := g.cells.Wrap(col, row)
	return Coord{Row: y, Col: x}
}

// Neighbors returns the wrapped north, south, west and east neighbours of
// (row, col), in that order. On grids narrower or shorter than three cells
// some of them coincide with each other or with the cell itself.
func (g Grid) Neighbors(row, col int) [4]Coord {
	var out [4]Coord
	for i, d := range neighborOffsets {
		out[i] = g.Wrap(row+d.Row, col+d.Col)
	}
	return out
}

// ActiveNeighbors counts the neighbours of (row, col) that are active.
func (g Grid) ActiveNeighbors(row, col int) int {
	n := 0
	for _, c := range g.Neighbors(row, col) {
		if IsActive(int(g.cells.At(c.Col, c.Row))) {
			n++
		}
	}
	return n
}

// Step computes the next generation into fresh storage. The receiver is
// only read.
func (g Grid) Step() Grid {
	w, h := g.cells.W, g.cells.H
	next := core.NewByteGrid(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			current := int(g.cells.At(col, row))
			next.Set(col, row, uint8(NextState(current, g.ActiveNeighbors(row, col))))
		}
	}
	return Grid{cells: next}
}

// Simulate applies Step steps times and returns the final grid. With zero
// steps the result has the same contents as initial.
func Simulate(initial Grid, steps int) (Grid, error) {
	if steps < 0 {
		return Grid{}, fmt.Errorf("%d: %w", steps, ErrNegativeSteps)
	}
	g := initial
	for i := 0; i < steps; i++ {
		g = g.Step()
	}
	return g, nil
}
