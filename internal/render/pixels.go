package render

import (
	"image"
	"image/color"

	"golcol/internal/core"
)

// Background is the color of dead cells.
var Background = color.RGBA{A: 0xff}

// fillCellsRGBA converts cells into RGBA pixels in buf, one pixel per cell.
func fillCellsRGBA(buf []byte, cells []core.Cell, bg color.RGBA) {
	for i, c := range cells {
		base := i * 4
		if c.Alive {
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = bg.R
		buf[base+1] = bg.G
		buf[base+2] = bg.B
		buf[base+3] = bg.A
	}
}

// RGB565 packs a color into the big-endian 16-bit format used by ST7789
// style panels.
func RGB565(c color.RGBA) (hi, lo byte) {
	v := uint16(c.R&0xf8)<<8 | uint16(c.G&0xfc)<<3 | uint16(c.B)>>3
	return byte(v >> 8), byte(v)
}

// FillRGB565 renders s into buf as a cellSize-scaled RGB565 frame. buf must
// hold 2*W*H*cellSize*cellSize bytes.
func FillRGB565(buf []byte, s core.Snapshot, cellSize int, bg color.RGBA) {
	bgHi, bgLo := RGB565(bg)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = bgHi, bgLo
	}
	stride := s.Size.W * cellSize * 2
	EachBlock(s, cellSize, func(r image.Rectangle, c color.RGBA) {
		hi, lo := RGB565(c)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := y * stride
			for x := r.Min.X; x < r.Max.X; x++ {
				buf[row+2*x] = hi
				buf[row+2*x+1] = lo
			}
		}
	})
}

// EachBlock calls fn with the screen rectangle and color of every alive
// cell. Dead cells are skipped.
func EachBlock(s core.Snapshot, cellSize int, fn func(r image.Rectangle, c color.RGBA)) {
	w := s.Size.W
	for i, c := range s.Cells {
		if !c.Alive {
			continue
		}
		x, y := (i%w)*cellSize, (i/w)*cellSize
		fn(image.Rect(x, y, x+cellSize, y+cellSize), c.RGBA())
	}
}
