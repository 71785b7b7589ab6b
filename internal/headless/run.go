// Package headless runs sandboxes without a window: scripted pours, per-tick
// telemetry and gravity sweeps across worker goroutines.
package headless

import (
	"context"
	"fmt"
	"time"

	"falling-sand/internal/sims/sand"
)

// Options controls a headless run.
type Options struct {
	// Ticks is the number of simulation steps.
	Ticks int
	// PourTicks limits pouring to the first PourTicks ticks. Zero pours
	// on every tick.
	PourTicks int
	// PourRow is the row the emitter paints at.
	PourRow int
}

// DefaultOptions returns a short run that pours for the first half.
func DefaultOptions() Options {
	return Options{Ticks: 600, PourTicks: 300, PourRow: 1}
}

// Sample is the telemetry recorded after one tick.
type Sample struct {
	Tick  uint64
	Stats sand.Stats
}

// Result summarises a headless run.
type Result struct {
	Gravity float64
	Seed    int64
	Grid    [2]int
	// Painted counts cells written by the emitter, including overwrites.
	Painted int
	Samples []Sample
	Final   sand.Stats
	Elapsed time.Duration
}

// Run pours sand into sim with an Emitter seeded from the sandbox seed and
// steps it opts.Ticks times. On cancellation the partial result is returned
// together with the context error.
func Run(ctx context.Context, sim *sand.Sandbox, opts Options) (Result, error) {
	cfg := sim.Config()
	size := sim.Size()
	res := Result{
		Gravity: cfg.Gravity,
		Seed:    cfg.Seed,
		Grid:    [2]int{size.W, size.H},
		Samples: make([]Sample, 0, max(opts.Ticks, 0)),
	}
	emitter := sand.NewEmitter(cfg.Seed, opts.PourRow)
	start := time.Now()

	for i := 0; i < opts.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			res.Final = sim.Stats()
			res.Elapsed = time.Since(start)
			return res, fmt.Errorf("run interrupted at tick %d: %w", i, err)
		}
		if opts.PourTicks <= 0 || i < opts.PourTicks {
			res.Painted += emitter.Pour(sim)
		}
		sim.Step()
		res.Samples = append(res.Samples, Sample{Tick: sim.Tick(), Stats: sim.Stats()})
	}
	res.Final = sim.Stats()
	res.Elapsed = time.Since(start)
	return res, nil
}

// Series extracts one value per sample for plotting.
func (r Result) Series(value func(sand.Stats) float64) []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = value(s.Stats)
	}
	return out
}
