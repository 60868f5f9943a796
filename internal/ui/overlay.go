//go:build ebiten

package ui

import (
	"image/color"

	"seven-gates/internal/core"
	"seven-gates/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type activeMaskProvider interface {
	ActiveMask() []bool
}

var activeTint = color.RGBA{R: 255, G: 255, B: 255, A: 96}

// Overlay highlights active cells on top of the base simulation.
type Overlay struct {
	sim        core.Sim
	scale      int
	showActive bool
	maskImg    *ebiten.Image
	maskBuf    []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showActive = !o.showActive
	}
}

// Draw paints the active-cell mask when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showActive {
		return
	}
	provider, ok := o.sim.(activeMaskProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	mask := provider.ActiveMask()
	if len(mask) != size.W*size.H {
		return
	}
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*size.W*size.H)
	}
	render.FillMaskRGBA(o.maskBuf, mask, activeTint)
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}
