package core

import "time"

// maxCatchUp bounds how many ticks a single Advance may report after a stall.
const maxCatchUp = 5

// FixedStep runs simulation updates at a steady ticks-per-second rate,
// independent of the frame rate that drives it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
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

// Advance feeds elapsed time into the accumulator and returns how many ticks
// are due. Leftover time is carried into the next call.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta < 0 {
		delta = 0
	}
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
		if n == maxCatchUp {
			// drop the backlog rather than spiral after a long stall
			f.accumulator = 0
			break
		}
	}
	return n
}

// Ticks measures wall-clock time since the previous call and reports how many
// ticks are due. The first call only starts the clock.
func (f *FixedStep) Ticks() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Reset discards accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
