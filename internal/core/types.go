package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell is one grid position: a color and its liveness.
type Cell struct {
	R, G, B uint8
	Alive   bool

	// next holds the computed liveness between the compute and commit
	// phases of a step. It is always false outside a step.
	next bool
}

// RGBA returns the cell color as an opaque color.RGBA.
func (c Cell) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Next reports the scratch liveness computed for the following generation.
func (c *Cell) Next() bool { return c.next }

// SetNext records the liveness the cell will take at commit.
func (c *Cell) SetNext(alive bool) { c.next = alive }

// Commit promotes the scratch liveness and clears it.
func (c *Cell) Commit() {
	c.Alive = c.next
	c.next = false
}

// Snapshot is a read-only copy of a grid handed to frame sinks.
type Snapshot struct {
	Size       Size
	Cells      []Cell
	Generation uint64
}

// At returns the cell at (x, y).
func (s Snapshot) At(x, y int) Cell { return s.Cells[y*s.Size.W+x] }

// Population counts the alive cells.
func (s Snapshot) Population() int {
	n := 0
	for i := range s.Cells {
		if s.Cells[i].Alive {
			n++
		}
	}
	return n
}

// Automaton is the contract the scheduler drives.
type Automaton interface {
	Name() string
	Size() Size
	Reseed()
	Step()
	Snapshot(dst *Snapshot)
}

// FrameSink paints a snapshot: alive cells as colored blocks, dead cells
// left as background.
type FrameSink interface {
	Paint(s Snapshot) error
}

// ResetInput exposes a level-triggered "reset requested" signal.
type ResetInput interface {
	ResetRequested() bool
}

// ResetFunc adapts a plain function to ResetInput.
type ResetFunc func() bool

// ResetRequested calls f.
func (f ResetFunc) ResetRequested() bool { return f() }
