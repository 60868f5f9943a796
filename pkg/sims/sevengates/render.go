package sevengates

import "strings"

// Palette maps each band to its glyph, lowest energy first.
const Palette = " .:=*#@"

// Render draws the grid as height lines of width glyphs separated by
// newlines, with no trailing newline.
func (g Grid) Render() string {
	w, h := g.cells.W, g.cells.H
	var b strings.Builder
	b.Grow(h*(w+1) - 1)
	for row := 0; row < h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, v := range g.cells.Row(row) {
			b.WriteByte(Palette[v])
		}
	}
	return b.String()
}

// String implements fmt.Stringer using Render.
func (g Grid) String() string { return g.Render() }
