package sand

import "github.com/aquilax/go-perlin"

const (
	emitterAlpha = 2
	emitterBeta  = 2
	emitterOct   = 3
	// emitterDrift is how far along the noise curve the spout moves per pour.
	emitterDrift = 0.02
)

// Emitter pours sand from a spout near the top of the grid whose column wanders
// smoothly over time. It stands in for a pointer held down when no one is
// driving the sandbox.
type Emitter struct {
	noise *perlin.Perlin
	t     float64
	row   int
}

// NewEmitter returns an emitter whose path is fixed by seed. Sand is poured
// at the given row.
func NewEmitter(seed int64, row int) *Emitter {
	return &Emitter{
		noise: perlin.NewPerlin(emitterAlpha, emitterBeta, emitterOct, seed),
		row:   row,
	}
}

// Column maps the current noise sample onto [0, cols).
func (e *Emitter) Column(cols int) int {
	if cols <= 0 {
		return 0
	}
	n := e.noise.Noise1D(e.t)
	// Noise1D stays well inside [-1, 1]; stretch it so the spout covers
	// most of the grid.
	pos := (n*1.5 + 1) / 2
	col := int(pos * float64(cols))
	return min(max(col, 0), cols-1)
}

// Pour paints once at the spout and moves it along. It returns the number of
// painted cells.
func (e *Emitter) Pour(s *Sandbox) int {
	col := e.Column(s.Size().W)
	e.t += emitterDrift
	return s.Paint(col, e.row)
}
