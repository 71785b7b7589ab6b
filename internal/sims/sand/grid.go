package sand

import "falling-sand/internal/core"

// Cell is one grid position. Hue is 0 for an empty cell and a tag in (0, 360]
// for a particle. Velocity is the particle's accumulated fall speed in rows
// per tick and is only meaningful while the cell is occupied.
type Cell struct {
	Hue      float64
	Velocity float64
}

// Occupied reports whether the cell holds a particle.
func (c Cell) Occupied() bool { return c.Hue != 0 }

// Grid is the column-major hue/velocity grid of a sandbox.
type Grid = core.Grid[Cell]

// NewGrid allocates an empty cols x rows grid.
func NewGrid(cols, rows int) *Grid {
	return core.NewGrid[Cell](cols, rows)
}

// Rand is the random source consumed by spawning and stepping.
// *core.RNG satisfies it.
type Rand interface {
	Float64() float64
}

// free reports whether (col, row) is inside g and empty.
func free(g *Grid, col, row int) bool {
	return g.InBounds(col, row) && !g.At(col, row).Occupied()
}

// CountOccupied returns the number of particles in g.
func CountOccupied(g *Grid) int {
	n := 0
	for _, c := range g.Cells() {
		if c.Occupied() {
			n++
		}
	}
	return n
}
