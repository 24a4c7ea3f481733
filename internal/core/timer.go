package core

import "time"

// FixedStep decouples simulation ticks from a frontend's draw rate: the
// caller pumps it every frame and advances the sim only when a full
// tick interval has accumulated.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given ticks per
// second. Non-positive rates fall back to 60.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.interval
	return fs
}

// SetTPS changes the tick rate. Safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.interval = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		return true
	}
	return false
}
