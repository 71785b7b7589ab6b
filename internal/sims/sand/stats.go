package sand

import "fmt"

// Stats summarises a grid for status lines and run reports.
type Stats struct {
	Particles    int
	MeanVelocity float64
	MaxVelocity  float64
	// PileHeight is the height of the tallest column, measured from the
	// bottom row to its topmost particle.
	PileHeight int
}

// Measure computes Stats for g.
func Measure(g *Grid) Stats {
	var st Stats
	sum := 0.0
	for col := 0; col < g.Cols; col++ {
		top := -1
		for row := 0; row < g.Rows; row++ {
			c := g.At(col, row)
			if !c.Occupied() {
				continue
			}
			if top < 0 {
				top = row
			}
			st.Particles++
			sum += c.Velocity
			st.MaxVelocity = max(st.MaxVelocity, c.Velocity)
		}
		if top >= 0 {
			st.PileHeight = max(st.PileHeight, g.Rows-top)
		}
	}
	if st.Particles > 0 {
		st.MeanVelocity = sum / float64(st.Particles)
	}
	return st
}

// Stats measures the current grid.
func (s *Sandbox) Stats() Stats { return Measure(s.state.Grid()) }

// StatusLines renders the sandbox state for status readouts.
func (s *Sandbox) StatusLines() []string {
	st := s.Stats()
	size := s.Size()
	return []string{
		fmt.Sprintf("tick %d  grid %dx%d", s.tick, size.W, size.H),
		fmt.Sprintf("particles %d  pile %d", st.Particles, st.PileHeight),
		fmt.Sprintf("velocity mean %.2f max %.2f", st.MeanVelocity, st.MaxVelocity),
		fmt.Sprintf("gravity %.3f  hue %.1f", s.cfg.Gravity, s.brush.Hue()),
	}
}
