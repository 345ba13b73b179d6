package core

import "time"

// FixedStep paces automatic generation steps at a steady rate independent of
// the frame rate of whatever loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given steps
// per second. The first poll always steps.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the step rate. Non-positive rates fall back to 1.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart drops accumulated time so pacing resumes from the next poll.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the caller should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after stalls rather than bursting.
		if f.accumulator > f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
