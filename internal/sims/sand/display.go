package sand

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// hueBuckets is the number of distinct display values used for particles.
// Value 0 is reserved for empty cells.
const hueBuckets = 255

var sandPalette = buildPalette()

// Palette exposes the color palette indexed by the display buffer.
func (s *Sandbox) Palette() []color.RGBA {
	return sandPalette
}

// HueColor converts a particle hue to the rendered color: full saturation and
// brightness on a [0, 360] hue wheel, where 360 is the same red as 0.
func HueColor(hue float64) color.RGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, hueBuckets+1)
	palette[0] = color.RGBA{A: 255}
	width := 360.0 / float64(hueBuckets-1)
	for i := 1; i <= hueBuckets; i++ {
		palette[i] = HueColor((float64(i) - 0.5) * width)
	}
	return palette
}

func encodeDisplayValue(c Cell) uint8 {
	if !c.Occupied() {
		return 0
	}
	idx := 1 + int(c.Hue/360*float64(hueBuckets-1))
	return uint8(min(max(idx, 1), hueBuckets))
}

// rebuildDisplay transposes the column-major grid into the row-major display
// buffer the painters consume.
func (s *Sandbox) rebuildDisplay() {
	g := s.state.Grid()
	total := g.Cols * g.Rows
	if cap(s.display) < total {
		s.display = make([]uint8, total)
	}
	s.display = s.display[:total]
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			s.display[row*g.Cols+col] = encodeDisplayValue(g.At(col, row))
		}
	}
}
