package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const halfBlock = "▀"

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#c8c8d2")).
	Background(lipgloss.Color("#101014"))

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666688"))

func hexPalette(palette []color.RGBA) []string {
	out := make([]string, len(palette))
	for i, c := range palette {
		cf, _ := colorful.MakeColor(c)
		out[i] = cf.Hex()
	}
	return out
}

// renderGrid draws a row-major display buffer of cols x rows cells, each cell
// size x size pixels, into a width x height character area. Runs of
// characters with the same colors are styled once.
func renderGrid(cells []uint8, cols, rows, size, width, height int, colors []string) string {
	var b strings.Builder
	value := func(px, py int) uint8 {
		col, row := px/size, py/size
		if col >= cols || row >= rows {
			return 0
		}
		return cells[row*cols+col]
	}
	for y := 0; y < height; y++ {
		runTop, runBottom, runLen := uint8(0), uint8(0), 0
		flush := func() {
			if runLen == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(colors[runTop])).
				Background(lipgloss.Color(colors[runBottom]))
			b.WriteString(style.Render(strings.Repeat(halfBlock, runLen)))
			runLen = 0
		}
		for x := 0; x < width; x++ {
			top, bottom := value(x, 2*y), value(x, 2*y+1)
			if runLen > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			runLen++
		}
		flush()
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
