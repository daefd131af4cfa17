package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep fires immediately.
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

// Period returns the interval between ticks.
func (f *FixedStep) Period() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// EdgeTrigger turns a level signal into one event per rising edge. A
// non-zero Holdoff ignores edges that arrive too soon after the last fire,
// which absorbs switch bounce.
type EdgeTrigger struct {
	Holdoff time.Duration

	prev  bool
	fired time.Time
	now   func() time.Time
}

// Observe feeds the current level and reports whether an event fires.
func (e *EdgeTrigger) Observe(level bool) bool {
	rising := level && !e.prev
	e.prev = level
	if !rising {
		return false
	}
	if e.Holdoff > 0 {
		now := e.clock()
		if !e.fired.IsZero() && now.Sub(e.fired) < e.Holdoff {
			return false
		}
		e.fired = now
	}
	return true
}

func (e *EdgeTrigger) clock() time.Time {
	if e.now != nil {
		return e.now()
	}
	return time.Now()
}
