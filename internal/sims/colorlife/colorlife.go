// Package colorlife implements Conway's Game of Life over colored cells.
// A cell born from exactly three parents takes the average of their
// colors; survivors keep theirs.
package colorlife

import (
	"sync"

	"golcol/internal/core"
	"golcol/internal/entropy"
)

var primaries = [3]core.Cell{
	{R: 255},
	{G: 255},
	{B: 255},
}

// Engine owns the grid and advances it one generation at a time. Reseed,
// Step and Snapshot are mutually exclusive, so they may be driven from
// different goroutines.
type Engine struct {
	mu   sync.Mutex
	grid *core.Grid
	src  entropy.Source
	gen  uint64
}

// New returns an engine with a w*h grid of dead cells, seeded from src on
// every Reseed.
func New(w, h int, src entropy.Source) *Engine {
	return &Engine{grid: core.NewGrid(w, h), src: src}
}

// NewDefault returns an engine sized for the display constants.
func NewDefault(src entropy.Source) *Engine {
	return New(GridWidth, GridHeight, src)
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "colorlife" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Generation returns the number of steps since the last reseed.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen
}

// Reseed gives every cell a random primary color and a random liveness.
// The modulo reductions are biased slightly toward low remainders since
// 2^32 is not a multiple of 3.
func (e *Engine) Reseed() {
	e.mu.Lock()
	defer e.mu.Unlock()

	cells := e.grid.Cells()
	for i := range cells {
		c := primaries[e.src.NextRandom(32)%3]
		c.Alive = e.src.NextRandom(32)%2 == 1
		cells[i] = c
	}
	e.gen = 0
}

// Step advances the grid by one generation.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()

	g := e.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			e.computeCell(x, y)
		}
	}
	cells := g.Cells()
	for i := range cells {
		cells[i].Commit()
	}
	e.gen++
}

// computeCell decides the next liveness of (x, y). A newborn's color is
// written immediately: dead cells' colors are never read by neighbors, so
// the rest of the compute phase still sees the previous generation.
func (e *Engine) computeCell(x, y int) {
	var sumR, sumG, sumB uint16
	alive := 0
	e.grid.Neighbors(x, y, func(n *core.Cell) {
		if !n.Alive {
			return
		}
		sumR += uint16(n.R)
		sumG += uint16(n.G)
		sumB += uint16(n.B)
		alive++
	})

	c := e.grid.At(x, y)
	switch {
	case !c.Alive && alive == 3:
		c.SetNext(true)
		c.R = uint8((sumR / 3) % 256)
		c.G = uint8((sumG / 3) % 256)
		c.B = uint8((sumB / 3) % 256)
	case c.Alive && (alive == 2 || alive == 3):
		c.SetNext(true)
	}
}

// Snapshot copies the grid into dst, reusing dst.Cells when large enough.
func (e *Engine) Snapshot(dst *core.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dst.Size = core.Size{W: e.grid.W, H: e.grid.H}
	dst.Cells = append(dst.Cells[:0], e.grid.Cells()...)
	dst.Generation = e.gen
}
