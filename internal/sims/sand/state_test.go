package sand

import "testing"

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Cols != 4 || g.Rows != 3 || len(g.Cells()) != 12 {
		t.Fatalf("unexpected grid shape %dx%d (%d cells)", g.Cols, g.Rows, len(g.Cells()))
	}
	for i, c := range g.Cells() {
		if c != (Cell{}) {
			t.Fatalf("cell %d not zeroed: %+v", i, c)
		}
	}
}

func TestNewGridClampsNegativeDimensions(t *testing.T) {
	g := NewGrid(-3, 5)
	if g.Cols != 0 || g.Rows != 5 || len(g.Cells()) != 0 {
		t.Fatalf("expected 0x5 grid, got %dx%d", g.Cols, g.Rows)
	}
}

func TestSpawnRegionFullDensityPaintsKernel(t *testing.T) {
	g := NewGrid(5, 5)
	rng := &scriptedRand{vals: []float64{0}}

	n := SpawnRegion(g, 2, 2, 1, 123, 0.75, rng)

	if n != 9 {
		t.Fatalf("expected 9 painted cells, got %d", n)
	}
	for col := 1; col <= 3; col++ {
		for row := 1; row <= 3; row++ {
			if got := g.At(col, row); got.Hue != 123 || got.Velocity != 1 {
				t.Fatalf("cell (%d,%d) = %+v", col, row, got)
			}
		}
	}
	if CountOccupied(g) != 9 {
		t.Fatalf("painted outside the kernel: %d particles", CountOccupied(g))
	}
}

func TestSpawnRegionDrawsForEveryOffset(t *testing.T) {
	g := NewGrid(3, 3)
	rng := &scriptedRand{vals: []float64{0}}

	n := SpawnRegion(g, 0, 0, 1, 10, 0.75, rng)

	if n != 4 {
		t.Fatalf("corner spawn should paint 4 in-bounds cells, got %d", n)
	}
	if rng.draws != 9 {
		t.Fatalf("expected one draw per offset including out-of-bounds ones, got %d", rng.draws)
	}
}

func TestSpawnRegionRespectsDensity(t *testing.T) {
	g := NewGrid(3, 3)
	// Offsets are visited column by column: (-1,-1), (-1,0), (-1,1), (0,-1) ...
	rng := &scriptedRand{vals: []float64{0.1, 0.75, 0.9, 0.74, 0, 0.8, 0.99, 0.5, 0.76}}

	n := SpawnRegion(g, 1, 1, 1, 10, 0.75, rng)

	want := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {1, 1}: true, {2, 1}: true}
	if n != len(want) {
		t.Fatalf("expected %d painted cells, got %d", len(want), n)
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if g.At(col, row).Occupied() != want[[2]int{col, row}] {
				t.Fatalf("cell (%d,%d) occupied=%v", col, row, g.At(col, row).Occupied())
			}
		}
	}
}

func TestSpawnRegionOverwritesParticles(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, Cell{Hue: 5, Velocity: 9})

	SpawnRegion(g, 0, 0, 0, 77, 1, &scriptedRand{vals: []float64{0.5}})

	if got := g.At(0, 0); got.Hue != 77 || got.Velocity != 1 {
		t.Fatalf("expected overwrite, got %+v", got)
	}
}

func TestStateResizeClearsParticles(t *testing.T) {
	s := NewState(10, 10)
	rng := &scriptedRand{vals: []float64{0}}
	for i := 0; i < 10; i++ {
		s.Spawn(i, i, 3, 200, 0.75, rng)
	}
	if CountOccupied(s.Grid()) == 0 {
		t.Fatal("spawns should have painted particles")
	}

	s.Resize(6, 8)

	g := s.Grid()
	if g.Cols != 6 || g.Rows != 8 {
		t.Fatalf("resize produced %dx%d", g.Cols, g.Rows)
	}
	if CountOccupied(g) != 0 {
		t.Fatalf("resize kept %d particles", CountOccupied(g))
	}
}

func TestStateResetKeepsDimensions(t *testing.T) {
	s := NewState(7, 4)
	s.Spawn(3, 2, 3, 100, 1, &scriptedRand{vals: []float64{0}})

	s.Reset()

	if g := s.Grid(); g.Cols != 7 || g.Rows != 4 || CountOccupied(g) != 0 {
		t.Fatalf("reset grid %dx%d with %d particles", g.Cols, g.Rows, CountOccupied(g))
	}
}

func TestStateAdvanceReplacesGrid(t *testing.T) {
	s := NewState(3, 3)
	s.Grid().Set(1, 0, Cell{Hue: 200, Velocity: 1})
	before := s.Grid()

	s.Advance(0.01, &scriptedRand{vals: []float64{0.9}})

	if s.Grid() == before {
		t.Fatal("advance should install a new grid")
	}
	if !before.At(1, 0).Occupied() {
		t.Fatal("advance must not modify the previous grid")
	}
	if got := s.Grid().At(1, 1); got.Hue != 200 {
		t.Fatalf("expected particle at (1,1), got %+v", got)
	}
}

func TestBrushWrapsPast360(t *testing.T) {
	b := NewBrush()
	if b.Hue() != 200 {
		t.Fatalf("initial hue %v, want 200", b.Hue())
	}
	for i := 0; i < 320; i++ {
		b.Advance()
	}
	if b.Hue() != 360 {
		t.Fatalf("hue %v, want 360", b.Hue())
	}
	b.Advance()
	if b.Hue() != 1 {
		t.Fatalf("hue %v, want wrap to 1", b.Hue())
	}
	b.Advance()
	if b.Hue() != 1.5 {
		t.Fatalf("hue %v, want 1.5", b.Hue())
	}
	b.Reset()
	if b.Hue() != 200 {
		t.Fatalf("reset hue %v, want 200", b.Hue())
	}
}
