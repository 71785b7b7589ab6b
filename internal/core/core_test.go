package core

import (
	"testing"
	"time"
)

func TestGridColumnMajorIndex(t *testing.T) {
	g := NewGrid[int](3, 4)
	if g.Index(0, 3) != 3 || g.Index(1, 0) != 4 || g.Index(2, 3) != 11 {
		t.Fatal("grid must be addressed col*rows+row")
	}
	g.Set(2, 1, 7)
	if g.Cells()[9] != 7 || g.At(2, 1) != 7 {
		t.Fatal("Set/At disagree with the backing slice")
	}
	g.Clear()
	if g.At(2, 1) != 0 {
		t.Fatal("Clear should zero the grid")
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid[uint8](2, 3)
	tests := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true}, {1, 2, true}, {-1, 0, false}, {2, 0, false}, {0, 3, false}, {0, -1, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.col, tt.row); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
	if empty := NewGrid[uint8](-1, -1); empty.Cols != 0 || empty.Rows != 0 || empty.InBounds(0, 0) {
		t.Fatal("negative dimensions should clamp to an empty grid")
	}
}

func TestRNGSeedReplays(t *testing.T) {
	a := NewRNG(5)
	first := []float64{a.Float64(), a.Float64(), a.Float64()}
	a.Seed(5)
	for i, want := range first {
		if got := a.Float64(); got != want {
			t.Fatalf("draw %d after reseed = %v, want %v", i, got, want)
		}
	}
	b, c := NewRNG(8), NewRNG(8)
	for i := 0; i < 100; i++ {
		vb, vc := b.Float64(), c.Float64()
		if vb != vc {
			t.Fatalf("draw %d differs between equal seeds", i)
		}
		if vb < 0 || vb >= 1 {
			t.Fatalf("Float64 out of range: %v", vb)
		}
	}
}

func TestFixedStepPending(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if got := fs.Pending(); got != 1 {
		t.Fatalf("first poll should release the primed tick, got %d", got)
	}
	now = now.Add(50 * time.Millisecond)
	if got := fs.Pending(); got != 0 {
		t.Fatalf("half a tick elapsed, got %d pending", got)
	}
	now = now.Add(260 * time.Millisecond)
	if got := fs.Pending(); got != 3 {
		t.Fatalf("expected 3 pending ticks, got %d", got)
	}
	now = now.Add(10 * time.Second)
	if got := fs.Pending(); got != maxCatchUp {
		t.Fatalf("catch-up should cap at %d, got %d", maxCatchUp, got)
	}
	now = now.Add(20 * time.Millisecond)
	if got := fs.Pending(); got != 0 {
		t.Fatalf("backlog should be dropped after a stall, got %d", got)
	}
	fs.SetTPS(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("non-positive TPS should fall back to 60, got %v", fs.Interval())
	}
}

func TestParameterControlClamp(t *testing.T) {
	intCtrl := ParameterControl{Type: ParamTypeInt, Min: 1, Max: 10, HasMin: true, HasMax: true}
	if got := intCtrl.Clamp(3.6); got != 4 {
		t.Fatalf("int clamp rounded to %v", got)
	}
	if got := intCtrl.Clamp(-2); got != 1 {
		t.Fatalf("int clamp min %v", got)
	}
	floatCtrl := ParameterControl{Type: ParamTypeFloat, Max: 0.1, HasMax: true}
	if got := floatCtrl.Clamp(-5); got != -5 {
		t.Fatalf("unbounded minimum should pass through, got %v", got)
	}
	if got := floatCtrl.Clamp(0.2); got != 0.1 {
		t.Fatalf("float clamp max %v", got)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}

func TestRegisterIgnoresInvalidEntries(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations should be ignored")
	}
}
