//go:build ebiten

package ui

import (
	"fmt"

	"golcol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints generation statistics on top of the grid.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles visibility on Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the status line for frame.
func (o *Overlay) Draw(screen *ebiten.Image, frame core.Snapshot, paused bool) {
	if !o.visible {
		return
	}
	line := Status(frame, paused)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  tps %.0f", line, ebiten.ActualTPS()))
}
