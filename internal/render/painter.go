//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a row-major display buffer into an image with one pixel
// per cell and draws it scaled, so every cell becomes a scale x scale square.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Deallocate()
		gp.img = nil
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
}

// Blit draws cells onto dst. The painter follows grid resizes.
func (gp *GridPainter) Blit(dst *ebiten.Image, w, h int, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != w*h {
		return
	}
	if w != gp.w || h != gp.h {
		gp.resize(w, h)
	}
	if gp.img == nil {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
