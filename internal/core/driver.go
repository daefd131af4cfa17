package core

import "fmt"

// Driver is the tick and reset handler binding an automaton to a sink.
type Driver struct {
	sim  Automaton
	sink FrameSink
	snap Snapshot
}

// NewDriver constructs a Driver painting sim into sink.
func NewDriver(sim Automaton, sink FrameSink) *Driver {
	return &Driver{sim: sim, sink: sink}
}

// Tick paints the current generation and then advances one step. When the
// paint fails the step is skipped.
func (d *Driver) Tick() error {
	d.sim.Snapshot(&d.snap)
	if err := d.sink.Paint(d.snap); err != nil {
		return fmt.Errorf("paint frame: %w", err)
	}
	d.sim.Step()
	return nil
}

// Redraw paints the current generation without advancing.
func (d *Driver) Redraw() error {
	d.sim.Snapshot(&d.snap)
	if err := d.sink.Paint(d.snap); err != nil {
		return fmt.Errorf("paint frame: %w", err)
	}
	return nil
}

// Reset reseeds the automaton.
func (d *Driver) Reset() { d.sim.Reseed() }

// Frame returns the snapshot painted by the last tick.
func (d *Driver) Frame() Snapshot { return d.snap }
