package core

import "time"

// maxCatchUp bounds how many ticks a single Pending call may report after a
// long stall, so a slow frame does not snowball into a slower one.
const maxCatchUp = 4

// FixedStep helps run simulation updates at a steady ticks-per-second rate,
// independent of how often the driver polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pending reports how many ticks are due since the previous call.
func (f *FixedStep) Pending() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == maxCatchUp {
		f.accumulator = 0
	}
	return n
}
