package main

import (
	"bytes"
	"strings"
	"testing"

	"golcol/internal/core"
)

type nopSink struct{ frames int }

func (s *nopSink) Paint(core.Snapshot) error {
	s.frames++
	return nil
}

func TestStatsSinkPrintsAndStops(t *testing.T) {
	var out bytes.Buffer
	next := &nopSink{}
	stopped := 0
	s := &statsSink{next: next, out: &out, every: 2, limit: 3, done: func() { stopped++ }}

	cells := []core.Cell{{R: 255, Alive: true}, {B: 255, Alive: true}, {}}
	for gen := uint64(0); gen < 3; gen++ {
		frame := core.Snapshot{Size: core.Size{W: 3, H: 1}, Cells: cells, Generation: gen}
		if err := s.Paint(frame); err != nil {
			t.Fatal(err)
		}
	}

	if next.frames != 3 {
		t.Fatalf("forwarded %d frames, want 3", next.frames)
	}
	if stopped != 1 {
		t.Fatalf("done called %d times, want 1", stopped)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("printed %d lines, want 2: %q", len(lines), out.String())
	}
	if want := "gen     0  pop     2  mean rgb (127,  0,127)"; lines[0] != want {
		t.Fatalf("line = %q, want %q", lines[0], want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := summarize(core.Snapshot{Cells: make([]core.Cell, 4), Generation: 9})
	if got != "gen     9  pop     0" {
		t.Fatalf("summarize = %q", got)
	}
}
