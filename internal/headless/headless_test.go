package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"falling-sand/internal/sims/sand"
)

func testConfig() sand.Config {
	cfg := sand.DefaultConfig()
	cfg.ViewportW, cfg.ViewportH = 80, 60
	cfg.CellSize = 2
	cfg.Seed = 7
	return cfg
}

func TestRunRecordsEveryTick(t *testing.T) {
	res, err := Run(context.Background(), sand.New(testConfig()), Options{Ticks: 40, PourTicks: 10, PourRow: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Samples) != 40 {
		t.Fatalf("expected 40 samples, got %d", len(res.Samples))
	}
	for i, s := range res.Samples {
		if s.Tick != uint64(i+1) {
			t.Fatalf("sample %d has tick %d", i, s.Tick)
		}
	}
	if res.Painted == 0 || res.Final.Particles == 0 {
		t.Fatalf("expected poured particles, got painted=%d final=%d", res.Painted, res.Final.Particles)
	}
	if res.Final.Particles > res.Painted {
		t.Fatalf("more particles (%d) than painted cells (%d)", res.Final.Particles, res.Painted)
	}
	if res.Grid != [2]int{40, 30} {
		t.Fatalf("unexpected grid %v", res.Grid)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Ticks: 60, PourRow: 1}
	a, err := Run(context.Background(), sand.New(testConfig()), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(context.Background(), sand.New(testConfig()), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Final != b.Final || a.Painted != b.Painted {
		t.Fatalf("runs diverged: %+v vs %+v", a.Final, b.Final)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, sand.New(testConfig()), Options{Ticks: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(res.Samples) != 0 {
		t.Fatalf("expected no samples, got %d", len(res.Samples))
	}
}

func TestSweepOrdersByGravity(t *testing.T) {
	gravities := []float64{0.05, 0, 0.01}
	results, err := Sweep(context.Background(), testConfig(), gravities, Options{Ticks: 30, PourRow: 1}, 2)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []float64{0, 0.01, 0.05} {
		if results[i].Gravity != want {
			t.Fatalf("result %d has gravity %v, want %v", i, results[i].Gravity, want)
		}
	}
	// Without gravity nothing ever gains speed beyond the spawn velocity.
	if results[0].Final.MaxVelocity != 1 {
		t.Fatalf("expected max velocity 1 at zero gravity, got %v", results[0].Final.MaxVelocity)
	}
	if results[2].Final.MeanVelocity <= results[0].Final.MeanVelocity {
		t.Fatalf("expected stronger gravity to raise mean velocity: %v <= %v",
			results[2].Final.MeanVelocity, results[0].Final.MeanVelocity)
	}
}

func TestSweepMatchesSerialRuns(t *testing.T) {
	gravities := []float64{0, 0.02, 0.04, 0.06}
	opts := Options{Ticks: 25, PourRow: 1}
	parallel, err := Sweep(context.Background(), testConfig(), gravities, opts, 4)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	serial, err := Sweep(context.Background(), testConfig(), gravities, opts, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	for i := range gravities {
		if parallel[i].Final != serial[i].Final {
			t.Fatalf("gravity %v: parallel %+v serial %+v", gravities[i], parallel[i].Final, serial[i].Final)
		}
	}
}

func TestSweepRejectsNegativeGravity(t *testing.T) {
	_, err := Sweep(context.Background(), testConfig(), []float64{0.01, -1}, Options{Ticks: 1}, 1)
	if !errors.Is(err, sand.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestWriteReport(t *testing.T) {
	res, err := Run(context.Background(), sand.New(testConfig()), Options{Ticks: 20, PourRow: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteReport(&buf, res); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"grid 40x30", "particles per tick", "mean velocity per tick"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSweep(t *testing.T) {
	results := []Result{
		{Gravity: 0, Final: sand.Stats{Particles: 5, MeanVelocity: 1, MaxVelocity: 1}},
		{Gravity: 0.02, Final: sand.Stats{Particles: 4, MeanVelocity: 1.4, MaxVelocity: 2}},
	}
	var buf bytes.Buffer
	if err := WriteSweep(&buf, results); err != nil {
		t.Fatalf("WriteSweep: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "GRAVITY") || !strings.Contains(out, "0.020") {
		t.Fatalf("unexpected sweep table:\n%s", out)
	}
	if !strings.Contains(out, "final mean velocity by gravity") {
		t.Fatalf("expected sweep chart:\n%s", out)
	}
}
