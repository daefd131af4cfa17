package core

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DefaultPoll is how often the scheduler samples the reset input.
const DefaultPoll = 10 * time.Millisecond

// Handler receives the two scheduler events.
type Handler interface {
	Tick() error
	Reset()
}

// Scheduler runs a periodic tick and a polled reset input on a single
// goroutine, so a reset can never land in the middle of a tick.
type Scheduler struct {
	TickEvery time.Duration
	PollEvery time.Duration
	Trigger   EdgeTrigger
	Logger    *log.Logger

	h Handler
}

// NewScheduler returns a Scheduler ticking tps times per second.
func NewScheduler(tps int, h Handler) *Scheduler {
	if tps <= 0 {
		tps = 60
	}
	return &Scheduler{
		TickEvery: time.Second / time.Duration(tps),
		PollEvery: DefaultPoll,
		h:         h,
	}
}

// Run blocks until ctx is done or a tick fails. A nil input disables
// reset polling.
func (s *Scheduler) Run(ctx context.Context, in ResetInput) error {
	tick := time.NewTicker(s.TickEvery)
	defer tick.Stop()

	var poll <-chan time.Time
	if in != nil {
		pt := time.NewTicker(s.PollEvery)
		defer pt.Stop()
		poll = pt.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-poll:
			if s.Trigger.Observe(in.ResetRequested()) {
				if s.Logger != nil {
					s.Logger.Print("reset requested")
				}
				s.h.Reset()
			}
		case <-tick.C:
			if err := s.h.Tick(); err != nil {
				return fmt.Errorf("tick: %w", err)
			}
		}
	}
}
