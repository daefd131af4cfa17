package app

import "flag"

// Config represents the command-line parameters for the desktop viewer.
// Grid geometry and tick rate are fixed at build time.
type Config struct {
	Seed int64
	Zoom int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 0, Zoom: 3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reproducible reseeds (0 uses system entropy)")
	fs.IntVar(&c.Zoom, "zoom", c.Zoom, "window magnification on top of the cell size")
}

// Scale returns the number of screen pixels per cell edge.
func (c *Config) Scale(cellSize int) int {
	zoom := c.Zoom
	if zoom < 1 {
		zoom = 1
	}
	return cellSize * zoom
}
