//go:build ebiten

package render

import (
	"fmt"

	"golcol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads snapshots into a single grid-sized ebiten image, one
// pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.img.Fill(Background)
	return gp
}

// Paint implements core.FrameSink.
func (gp *GridPainter) Paint(s core.Snapshot) error {
	if len(s.Cells) != gp.w*gp.h {
		return fmt.Errorf("snapshot has %d cells, painter expects %d", len(s.Cells), gp.w*gp.h)
	}
	fillCellsRGBA(gp.buf, s.Cells, Background)
	gp.img.WritePixels(gp.buf)
	return nil
}

// Blit draws the last painted frame scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
