package sevengates

import "image/color"

var bandPalette = []color.RGBA{
	{R: 8, G: 8, B: 16, A: 255},
	{R: 24, G: 40, B: 88, A: 255},
	{R: 32, G: 96, B: 140, A: 255},
	{R: 40, G: 150, B: 130, A: 255},
	{R: 220, G: 170, B: 40, A: 255},
	{R: 240, G: 100, B: 30, A: 255},
	{R: 255, G: 240, B: 220, A: 255},
}

// Palette exposes the colour used for each band, lowest energy first. The
// upper three entries are the active bands.
func (a *Automaton) Palette() []color.RGBA {
	return append([]color.RGBA(nil), bandPalette...)
}
