package core

import (
	"errors"
	"slices"
	"testing"
)

type recorder struct {
	calls []string
	gen   uint64
}

func (r *recorder) Name() string { return "recorder" }
func (r *recorder) Size() Size   { return Size{W: 1, H: 1} }

func (r *recorder) Reseed() {
	r.calls = append(r.calls, "reseed")
	r.gen = 0
}

func (r *recorder) Step() {
	r.calls = append(r.calls, "step")
	r.gen++
}

func (r *recorder) Snapshot(dst *Snapshot) {
	r.calls = append(r.calls, "snapshot")
	dst.Size = r.Size()
	dst.Cells = append(dst.Cells[:0], Cell{Alive: true})
	dst.Generation = r.gen
}

type sinkFunc func(Snapshot) error

func (f sinkFunc) Paint(s Snapshot) error { return f(s) }

func TestDriverPaintsBeforeStepping(t *testing.T) {
	rec := &recorder{}
	var painted []uint64
	d := NewDriver(rec, sinkFunc(func(s Snapshot) error {
		rec.calls = append(rec.calls, "paint")
		painted = append(painted, s.Generation)
		return nil
	}))

	for i := 0; i < 2; i++ {
		if err := d.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	d.Reset()

	want := []string{"snapshot", "paint", "step", "snapshot", "paint", "step", "reseed"}
	if !slices.Equal(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	if !slices.Equal(painted, []uint64{0, 1}) {
		t.Fatalf("painted generations = %v, want [0 1]", painted)
	}
	if d.Frame().Generation != 1 {
		t.Fatalf("last frame generation = %d, want 1", d.Frame().Generation)
	}
}

func TestDriverSkipsStepOnPaintError(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("spi timeout")
	d := NewDriver(rec, sinkFunc(func(Snapshot) error { return boom }))

	if err := d.Tick(); !errors.Is(err, boom) {
		t.Fatalf("Tick error = %v, want wrapped %v", err, boom)
	}
	if slices.Contains(rec.calls, "step") {
		t.Fatal("step must not run after a failed paint")
	}
}

func TestDriverRedrawDoesNotStep(t *testing.T) {
	rec := &recorder{}
	frames := 0
	d := NewDriver(rec, sinkFunc(func(Snapshot) error {
		frames++
		return nil
	}))
	if err := d.Redraw(); err != nil {
		t.Fatal(err)
	}
	if frames != 1 || slices.Contains(rec.calls, "step") {
		t.Fatalf("frames=%d calls=%v, want one paint and no step", frames, rec.calls)
	}
}
