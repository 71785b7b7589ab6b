//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"falling-sand/internal/core"
)

type statusProvider interface {
	StatusLines() []string
}

// Overlay draws a status readout in the top-left corner of the simulation.
// Key 1 toggles it.
type Overlay struct {
	sim  core.Sim
	show bool
	bg   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, show: true}
	o.bg = ebiten.NewImage(1, 1)
	o.bg.Fill(color.RGBA{A: 160})
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(statusProvider)
	if !ok {
		return
	}
	lines := append(provider.StatusLines(), fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	const lineHeight = 14
	width := 0
	face := basicfont.Face7x13
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+8), float64(len(lines)*lineHeight+6))
	screen.DrawImage(o.bg, op)
	for i, line := range lines {
		text.Draw(screen, line, face, 4, 14+i*lineHeight, color.White)
	}
}
