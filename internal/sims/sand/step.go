package sand

import "math"

// Step computes the grid that follows cur after one tick with the given
// gravity increment. cur is only read; the result is a freshly allocated grid
// of the same dimensions.
//
// Particles are visited column by column, top to bottom. Each one looks for
// the farthest reachable row first: for every row y from floor(row+velocity)
// up to the row just below it, straight down is tried, then one diagonal and
// then the other, with the diagonal order drawn from rng once per row.
// Availability is judged against cur, so two particles may claim the same
// empty cell in one tick; the one visited last overwrites the other.
// A particle that finds nothing stays put. Either way it gains gravity once.
func Step(cur *Grid, gravity float64, rng Rand) *Grid {
	next := NewGrid(cur.Cols, cur.Rows)
	for i := 0; i < cur.Cols; i++ {
		for j := 0; j < cur.Rows; j++ {
			c := cur.At(i, j)
			if !c.Occupied() {
				continue
			}
			col, row := settle(cur, i, j, c.Velocity, rng)
			next.Set(col, row, Cell{Hue: c.Hue, Velocity: c.Velocity + gravity})
		}
	}
	return next
}

// settle returns the destination of the particle at (i, j).
func settle(cur *Grid, i, j int, velocity float64, rng Rand) (int, int) {
	// Rows past the bottom edge are never available, so the scan starts at
	// the last row at most. This keeps a tick bounded while the velocity of
	// a resting particle keeps growing.
	start := cur.Rows - 1
	if target := math.Floor(float64(j) + velocity); target < float64(start) {
		start = int(target)
	}
	for y := start; y > j; y-- {
		dir := 1
		if rng.Float64() < 0.5 {
			dir = -1
		}
		switch {
		case free(cur, i, y):
			return i, y
		case free(cur, i+dir, y):
			return i + dir, y
		case free(cur, i-dir, y):
			return i - dir, y
		}
	}
	return i, j
}
