package sand

import (
	"image/color"
	"testing"
)

func TestHueColorPrimaries(t *testing.T) {
	tests := []struct {
		hue  float64
		want color.RGBA
	}{
		{0, color.RGBA{R: 255, A: 255}},
		{120, color.RGBA{G: 255, A: 255}},
		{240, color.RGBA{B: 255, A: 255}},
		{360, color.RGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := HueColor(tt.hue); got != tt.want {
			t.Errorf("HueColor(%v) = %+v, want %+v", tt.hue, got, tt.want)
		}
	}
}

func TestEncodeDisplayValue(t *testing.T) {
	if v := encodeDisplayValue(Cell{}); v != 0 {
		t.Fatalf("empty cell encoded as %d", v)
	}
	low := encodeDisplayValue(Cell{Hue: 0.5})
	high := encodeDisplayValue(Cell{Hue: 360})
	if low != 1 || high != hueBuckets {
		t.Fatalf("hue range encoded to [%d, %d], want [1, %d]", low, high, hueBuckets)
	}
	if mid := encodeDisplayValue(Cell{Hue: 180}); mid <= low || mid >= high {
		t.Fatalf("mid hue encoded as %d", mid)
	}
}

func TestPaletteShape(t *testing.T) {
	if len(sandPalette) != hueBuckets+1 {
		t.Fatalf("palette has %d entries", len(sandPalette))
	}
	if sandPalette[0] != (color.RGBA{A: 255}) {
		t.Fatalf("background should be opaque black, got %+v", sandPalette[0])
	}
	for i, c := range sandPalette[1:] {
		if c.A != 255 || c.R|c.G|c.B == 0 {
			t.Fatalf("palette entry %d is not a bright color: %+v", i+1, c)
		}
	}
}

func TestMeasure(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(0, 3, Cell{Hue: 1, Velocity: 1})
	g.Set(1, 1, Cell{Hue: 1, Velocity: 3})
	g.Set(1, 3, Cell{Hue: 1, Velocity: 2})

	st := Measure(g)

	if st.Particles != 3 || st.MaxVelocity != 3 || st.MeanVelocity != 2 || st.PileHeight != 3 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if empty := Measure(NewGrid(0, 0)); empty != (Stats{}) {
		t.Fatalf("empty grid stats %+v", empty)
	}
}

func TestEmitterStaysOnGrid(t *testing.T) {
	cfg := smallConfig()
	s := New(cfg)
	e := NewEmitter(5, 0)
	seen := map[int]bool{}
	for i := 0; i < 400; i++ {
		col := e.Column(s.Size().W)
		if col < 0 || col >= s.Size().W {
			t.Fatalf("emitter column %d outside grid", col)
		}
		seen[col] = true
		e.Pour(s)
		s.Step()
	}
	if len(seen) < 2 {
		t.Fatal("emitter spout never moved")
	}
	if s.Stats().Particles == 0 {
		t.Fatal("emitter poured nothing")
	}
	if NewEmitter(5, 0).Column(0) != 0 {
		t.Fatal("zero-width grid should map to column 0")
	}
}

func TestEmitterDeterministic(t *testing.T) {
	a, b := NewEmitter(11, 0), NewEmitter(11, 0)
	sa, sb := New(smallConfig()), New(smallConfig())
	for i := 0; i < 50; i++ {
		a.Pour(sa)
		b.Pour(sb)
		sa.Step()
		sb.Step()
	}
	if sa.Stats() != sb.Stats() {
		t.Fatalf("same seed emitters diverged: %+v vs %+v", sa.Stats(), sb.Stats())
	}
}

func TestStatusLines(t *testing.T) {
	s := New(smallConfig())
	s.Paint(4, 4)
	s.Step()
	lines := s.StatusLines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 status lines, got %d", len(lines))
	}
	if lines[0] != "tick 1  grid 20x15" || lines[1] != "particles 9  pile 12" {
		t.Fatalf("unexpected status %q", lines[:2])
	}
}
