package ui

import (
	"fmt"

	"golcol/internal/core"
)

// Status summarises a frame as a single line.
func Status(frame core.Snapshot, paused bool) string {
	line := fmt.Sprintf("gen %d  pop %d/%d", frame.Generation, frame.Population(), len(frame.Cells))
	if paused {
		line += "  [paused]"
	}
	return line
}
