//go:build rp2040

package main

import (
	"context"
	"time"

	"golcol/internal/core"
	"golcol/internal/device"
	"golcol/internal/entropy"
	"golcol/internal/sims/colorlife"
)

func main() {
	// Give the panel time to power up.
	time.Sleep(500 * time.Millisecond)

	display, err := device.NewDisplay(colorlife.CellSize)
	if err != nil {
		println("display init failed:", err.Error())
		return
	}

	sim := colorlife.NewDefault(entropy.NewSampler(device.NewROSC()))
	sim.Reseed()

	sched := core.NewScheduler(colorlife.FPS, core.NewDriver(sim, display))
	sched.Trigger.Holdoff = 200 * time.Millisecond
	button := device.NewButton(device.ButtonX)

	for {
		if err := sched.Run(context.Background(), button); err != nil {
			println(err.Error())
		}
	}
}
