//go:build rp2040

package device

import (
	"machine"

	"golcol/internal/core"
	"golcol/internal/render"

	"tinygo.org/x/drivers/st7789"
)

// Panel geometry of the Pico Display in landscape.
const (
	Width  = 240
	Height = 135
)

// Display is a core.FrameSink painting into an RGB565 framebuffer that is
// pushed to the panel in one transfer.
type Display struct {
	dev      st7789.Device
	cellSize int
	buf      []byte
}

// NewDisplay brings up SPI0 and the panel. The framebuffer is sized lazily
// from the first snapshot.
func NewDisplay(cellSize int) (*Display, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 62500000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}

	dev := st7789.New(machine.SPI0, machine.NoPin, machine.GP16, machine.GP17, machine.GP20)
	dev.Configure(st7789.Config{
		Width:        Height,
		Height:       Width,
		Rotation:     st7789.ROTATION_90,
		RowOffset:    40,
		ColumnOffset: 52,
	})
	dev.FillScreen(render.Background)

	return &Display{dev: dev, cellSize: cellSize}, nil
}

// Paint implements core.FrameSink.
func (d *Display) Paint(s core.Snapshot) error {
	w, h := s.Size.W*d.cellSize, s.Size.H*d.cellSize
	if n := 2 * w * h; len(d.buf) != n {
		d.buf = make([]byte, n)
	}
	render.FillRGB565(d.buf, s, d.cellSize, render.Background)
	return d.dev.DrawRGBBitmap8(0, 0, d.buf, int16(w), int16(h))
}
