package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golcol/internal/core"
)

// ImageSink paints frames into an in-memory RGBA image.
type ImageSink struct {
	cellSize int
	img      *image.RGBA
}

// NewImageSink returns a sink for a grid of the given size.
func NewImageSink(size core.Size, cellSize int) *ImageSink {
	return &ImageSink{
		cellSize: cellSize,
		img:      image.NewRGBA(image.Rect(0, 0, size.W*cellSize, size.H*cellSize)),
	}
}

// Paint implements core.FrameSink.
func (s *ImageSink) Paint(snap core.Snapshot) error {
	want := image.Rect(0, 0, snap.Size.W*s.cellSize, snap.Size.H*s.cellSize)
	if s.img.Bounds() != want {
		return fmt.Errorf("snapshot %dx%d does not fit image %v", snap.Size.W, snap.Size.H, s.img.Bounds())
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	EachBlock(snap, s.cellSize, func(r image.Rectangle, c color.RGBA) {
		draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	})
	return nil
}

// Image returns the last painted frame.
func (s *ImageSink) Image() *image.RGBA { return s.img }

// WritePNG encodes the last painted frame.
func (s *ImageSink) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
