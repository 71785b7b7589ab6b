package sand

// State owns the authoritative grid of a sandbox. The grid is replaced, never
// mutated, by Advance; Spawn paints into it between ticks.
type State struct {
	grid *Grid
}

// NewState returns a state holding an empty cols x rows grid.
func NewState(cols, rows int) *State {
	return &State{grid: NewGrid(cols, rows)}
}

// Grid returns the current grid. Callers must treat it as read-only.
func (s *State) Grid() *Grid { return s.grid }

// Resize discards every particle and replaces the grid with an empty one of
// the new dimensions. Nothing is carried over.
func (s *State) Resize(cols, rows int) {
	s.grid = NewGrid(cols, rows)
}

// Reset empties the grid, keeping its dimensions.
func (s *State) Reset() {
	s.Resize(s.grid.Cols, s.grid.Rows)
}

// Advance runs one tick and makes its result the current grid.
func (s *State) Advance(gravity float64, rng Rand) {
	s.grid = Step(s.grid, gravity, rng)
}

// Spawn paints a kernel-sized square of particles centred on (col, row).
func (s *State) Spawn(col, row, kernel int, hue, density float64, rng Rand) int {
	return SpawnRegion(s.grid, col, row, kernel/2, hue, density, rng)
}

// SpawnRegion visits every offset in [-radius, radius]^2 around (col, row),
// draws one random value per offset and, when it is below density and the
// target lies inside g, stores a particle with the given hue and velocity 1.
// Existing particles are overwritten. It returns how many cells were painted.
func SpawnRegion(g *Grid, col, row, radius int, hue, density float64, rng Rand) int {
	painted := 0
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if rng.Float64() >= density {
				continue
			}
			c, r := col+i, row+j
			if !g.InBounds(c, r) {
				continue
			}
			g.Set(c, r, Cell{Hue: hue, Velocity: 1})
			painted++
		}
	}
	return painted
}
