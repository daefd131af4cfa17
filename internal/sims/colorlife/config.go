package colorlife

// Build-time geometry and cadence of the Pico Display target.
const (
	// CellSize is the edge length of one cell in display pixels.
	CellSize = 2
	// DisplayWidth and DisplayHeight are the panel resolution in pixels.
	DisplayWidth  = 240
	DisplayHeight = 135

	GridWidth  = DisplayWidth / CellSize
	GridHeight = DisplayHeight / CellSize

	// FPS is the number of render-and-step ticks per second.
	FPS = 5
)
