//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golcol/internal/app"
	"golcol/internal/entropy"
	"golcol/internal/sims/colorlife"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim := colorlife.NewDefault(entropy.FromSeed(cfg.Seed))
	sim.Reseed()

	scale := cfg.Scale(colorlife.CellSize)
	game := app.New(sim, colorlife.FPS, scale)
	size := sim.Size()
	log.Printf("%s: %dx%d cells at %d fps, seed %d", sim.Name(), size.W, size.H, colorlife.FPS, cfg.Seed)

	ebiten.SetWindowTitle("golcol - " + sim.Name())
	ebiten.SetWindowSize(size.W*scale, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
