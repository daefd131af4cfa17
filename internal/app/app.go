//go:build ebiten

package app

import (
	"golcol/internal/core"
	"golcol/internal/render"
	"golcol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an automaton to the ebiten.Game interface. ebiten calls
// Update at its own TPS; a FixedStep paces render-and-step ticks down to
// the automaton's rate.
type Game struct {
	sim     core.Automaton
	driver  *core.Driver
	painter *render.GridPainter
	overlay *ui.Overlay
	pace    *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game ticking sim tps times per second, drawn with each
// cell scale screen pixels wide.
func New(sim core.Automaton, tps, scale int) *Game {
	size := sim.Size()
	gp := render.NewGridPainter(size.W, size.H)
	return &Game{
		sim:     sim,
		driver:  core.NewDriver(sim, gp),
		painter: gp,
		overlay: ui.NewOverlay(),
		pace:    core.NewFixedStep(tps),
		scale:   scale,
	}
}

// Reset reseeds the automaton and shows the new generation at once.
func (g *Game) Reset() error {
	g.driver.Reset()
	g.tickOnce = false
	return g.driver.Redraw()
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.Reset(); err != nil {
			return err
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	due := g.pace.ShouldStep()
	if (due && !g.paused) || g.tickOnce {
		g.tickOnce = false
		return g.driver.Tick()
	}
	return nil
}

// Draw renders the last painted generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.driver.Frame(), g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
