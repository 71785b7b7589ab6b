package core

// Grid stores a 2D grid of cells in column-major order, so that a column's
// cells are contiguous and Index(col, row) == col*Rows + row.
type Grid[T any] struct {
	Cols, Rows int
	data       []T
}

// NewGrid allocates a zeroed grid. Negative dimensions are clamped to zero;
// an empty grid is legal and simply has no cells.
func NewGrid[T any](cols, rows int) *Grid[T] {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid[T]{Cols: cols, Rows: rows, data: make([]T, cols*rows)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (col, row).
func (g *Grid[T]) Index(col, row int) int { return col*g.Rows + row }

// InBounds reports whether (col, row) addresses a cell of the grid.
func (g *Grid[T]) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// At returns the cell at (col, row). The coordinates must be in bounds.
func (g *Grid[T]) At(col, row int) T { return g.data[g.Index(col, row)] }

// Set stores v at (col, row). The coordinates must be in bounds.
func (g *Grid[T]) Set(col, row int, v T) { g.data[g.Index(col, row)] = v }

// Clear zeroes every cell.
func (g *Grid[T]) Clear() {
	clear(g.data)
}
