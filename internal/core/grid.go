package core

// Grid stores a 2D grid of cells in row-major order. Positions outside the
// grid do not exist: there is no wrapping.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// At returns a pointer to the cell at (x, y).
func (g *Grid) At(x, y int) *Cell { return &g.cells[y*g.W+x] }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Neighbors calls fn for each in-bounds Moore neighbor of (x, y). Corners
// have three neighbors, other edge cells five.
func (g *Grid) Neighbors(x, y int, fn func(c *Cell)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			fn(&g.cells[ny*g.W+nx])
		}
	}
}
