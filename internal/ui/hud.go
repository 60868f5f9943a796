//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"seven-gates/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached parameter lines from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = nil
		return
	}
	h.lines = provider.Parameters().Lines()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := hudMargin + hudLineHeight
	text.Draw(h.panel, h.title, face, hudMargin, y, color.White)
	y += hudLineHeight
	for _, line := range h.lines {
		y += hudLineHeight
		if y > height {
			break
		}
		text.Draw(h.panel, line, face, hudMargin, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
	y += 2 * hudLineHeight
	for _, help := range keyHelp {
		if y > height {
			break
		}
		text.Draw(h.panel, help, face, hudMargin, y, color.RGBA{R: 120, G: 120, B: 140, A: 255})
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var keyHelp = []string{
	"space pause  n step",
	"r reset  s reseed",
	"1 active overlay  q quit",
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	return strings.ToUpper(sim.Name())
}
