package sevengates

import (
	"time"

	"seven-gates/internal/core"
	rng "seven-gates/pkg/core"
)

// Random builds a width x height grid whose cells are drawn uniformly from
// [0, Bands) in row-major order. The same seed always yields the same grid.
func Random(width, height int, seed int64) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	return randomGrid(width, height, seed), nil
}

// RandomUnseeded is Random with a seed taken from the wall clock.
func RandomUnseeded(width, height int) (Grid, error) {
	return Random(width, height, time.Now().UnixNano())
}

func randomGrid(width, height int, seed int64) Grid {
	cells := core.NewByteGrid(width, height)
	rng.NewRNG(seed).FillBands(cells.Cells(), Bands)
	return Grid{cells: cells}
}
