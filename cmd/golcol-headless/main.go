package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"golcol/internal/core"
	"golcol/internal/entropy"
	"golcol/internal/render"
	"golcol/internal/sims/colorlife"
)

func main() {
	seed := flag.Int64("seed", 1, "entropy seed (0 uses system entropy)")
	generations := flag.Int("generations", 200, "number of render-and-step ticks to run")
	every := flag.Int("every", 20, "print statistics every N generations (0 disables)")
	pngPath := flag.String("png", "", "write the final frame to this PNG file")
	realtime := flag.Bool("realtime", false, "pace ticks at the display rate instead of running flat out")
	flag.Parse()

	sim := colorlife.NewDefault(entropy.FromSeed(*seed))
	sim.Reseed()
	size := sim.Size()
	log.Printf("%s: %dx%d cells, seed %d, %d generations", sim.Name(), size.W, size.H, *seed, *generations)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img := render.NewImageSink(size, colorlife.CellSize)
	stats := &statsSink{next: img, out: os.Stdout, every: *every, limit: *generations, done: stop}
	driver := core.NewDriver(sim, stats)

	if *realtime {
		if err := core.NewScheduler(colorlife.FPS, driver).Run(ctx, nil); err != nil {
			log.Fatal(err)
		}
	} else {
		for i := 0; i < *generations && ctx.Err() == nil; i++ {
			if err := driver.Tick(); err != nil {
				log.Fatal(err)
			}
		}
	}

	var final core.Snapshot
	sim.Snapshot(&final)
	if err := img.Paint(final); err != nil {
		log.Fatal(err)
	}
	if *pngPath == "" {
		return
	}
	f, err := os.Create(*pngPath)
	if err != nil {
		log.Fatalf("create %s: %v", *pngPath, err)
	}
	if err := img.WritePNG(f); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *pngPath, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *pngPath)
}
