package main

import (
	"fmt"
	"io"

	"golcol/internal/core"
)

// statsSink forwards frames to another sink and prints a summary line
// every few generations. done is called once limit frames have been seen.
type statsSink struct {
	next  core.FrameSink
	out   io.Writer
	every int
	limit int
	done  func()

	frames int
}

func (s *statsSink) Paint(frame core.Snapshot) error {
	if err := s.next.Paint(frame); err != nil {
		return err
	}
	s.frames++
	if s.every > 0 && frame.Generation%uint64(s.every) == 0 {
		fmt.Fprintln(s.out, summarize(frame))
	}
	if s.limit > 0 && s.frames >= s.limit && s.done != nil {
		s.done()
	}
	return nil
}

// summarize reports population and the mean color of the living cells.
func summarize(frame core.Snapshot) string {
	var r, g, b, n uint64
	for _, c := range frame.Cells {
		if !c.Alive {
			continue
		}
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
		n++
	}
	if n == 0 {
		return fmt.Sprintf("gen %5d  pop %5d", frame.Generation, 0)
	}
	return fmt.Sprintf("gen %5d  pop %5d  mean rgb (%3d,%3d,%3d)", frame.Generation, n, r/n, g/n, b/n)
}
