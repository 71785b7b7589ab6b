package sand

import (
	"math"

	"falling-sand/internal/core"
)

// Sandbox is the falling-sand simulation as seen by drivers: a grid sized
// from the viewport, a hue cursor for painting and a seeded random stream.
type Sandbox struct {
	cfg   Config
	state *State
	brush Brush
	rng   *core.RNG
	tick  uint64

	display []uint8
}

// New returns a sandbox configured from cfg. Invalid values are clamped to
// the nearest usable ones; run cfg.Validate first to reject them instead.
func New(cfg Config) *Sandbox {
	cfg.CellSize = max(cfg.CellSize, 1)
	cfg.Gravity = max(cfg.Gravity, 0)
	cfg.Kernel = max(cfg.Kernel, 1) | 1
	cfg.Density = min(max(cfg.Density, 0), 1)
	cols, rows := cfg.Dimensions()
	s := &Sandbox{
		cfg:   cfg,
		state: NewState(cols, rows),
		brush: NewBrush(),
		rng:   core.NewRNG(cfg.Seed),
	}
	s.rebuildDisplay()
	return s
}

// Name returns the simulation identifier.
func (s *Sandbox) Name() string { return "sand" }

// Size reports the grid dimensions in cells.
func (s *Sandbox) Size() core.Size {
	g := s.state.Grid()
	return core.Size{W: g.Cols, H: g.Rows}
}

// Cells exposes the row-major display buffer; see Palette.
func (s *Sandbox) Cells() []uint8 { return s.display }

// Grid exposes the current grid. It must not be modified.
func (s *Sandbox) Grid() *Grid { return s.state.Grid() }

// Config returns the active configuration.
func (s *Sandbox) Config() Config { return s.cfg }

// Hue returns the hue the next paint call will use.
func (s *Sandbox) Hue() float64 { return s.brush.Hue() }

// Tick returns the number of steps since the last reset.
func (s *Sandbox) Tick() uint64 { return s.tick }

// Reset clears every particle, rewinds the hue cursor and reseeds the random
// stream. A zero seed falls back to the configured one.
func (s *Sandbox) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng.Seed(seed)
	s.state.Reset()
	s.brush.Reset()
	s.tick = 0
	s.rebuildDisplay()
}

// Step advances the simulation by one tick.
func (s *Sandbox) Step() {
	s.state.Advance(s.cfg.Gravity, s.rng)
	s.tick++
	s.rebuildDisplay()
}

// Paint spawns particles around (col, row) with the current hue and moves the
// hue cursor on. It returns the number of painted cells.
func (s *Sandbox) Paint(col, row int) int {
	n := s.state.Spawn(col, row, s.cfg.Kernel, s.brush.Hue(), s.cfg.Density, s.rng)
	s.brush.Advance()
	s.rebuildDisplay()
	return n
}

// PaintPixel paints at the cell under viewport pixel (x, y).
func (s *Sandbox) PaintPixel(x, y int) int {
	col, row := s.PixelToCell(x, y)
	return s.Paint(col, row)
}

// PixelToCell maps a viewport pixel to the cell drawn there.
func (s *Sandbox) PixelToCell(x, y int) (int, int) {
	w := float64(s.cfg.CellSize)
	return int(math.Floor(float64(x) / w)), int(math.Floor(float64(y) / w))
}

// Resize replaces the grid with an empty cols x rows one.
func (s *Sandbox) Resize(cols, rows int) {
	s.state.Resize(cols, rows)
	s.rebuildDisplay()
}

// SetCellSize changes the particle size. A new size resizes, and therefore
// clears, the grid. Sizes below 1 are rejected.
func (s *Sandbox) SetCellSize(w int) bool {
	if w < 1 {
		return false
	}
	if w == s.cfg.CellSize {
		return true
	}
	s.cfg.CellSize = w
	s.Resize(s.cfg.Dimensions())
	return true
}

// SetViewport changes the drawing area. The grid is only rebuilt when the
// implied dimensions change.
func (s *Sandbox) SetViewport(w, h int) bool {
	if w < 0 || h < 0 {
		return false
	}
	s.cfg.ViewportW, s.cfg.ViewportH = w, h
	cols, rows := s.cfg.Dimensions()
	if size := s.Size(); size.W != cols || size.H != rows {
		s.Resize(cols, rows)
	}
	return true
}

// SetGravity sets the per-tick velocity increment. Negative values are rejected.
func (s *Sandbox) SetGravity(g float64) bool {
	if g < 0 || math.IsNaN(g) {
		return false
	}
	s.cfg.Gravity = g
	return true
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
