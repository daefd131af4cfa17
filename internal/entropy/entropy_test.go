package entropy

import "testing"

// scripted replays a fixed sequence of register reads.
type scripted struct {
	reads []uint32
	n     int
}

func (s *scripted) Bit() uint32 {
	v := s.reads[s.n%len(s.reads)]
	s.n++
	return v
}

func TestNextRandomZeroWidth(t *testing.T) {
	reg := &scripted{reads: []uint32{1}}
	s := NewSampler(reg)
	for i := 0; i < 4; i++ {
		if got := s.NextRandom(0); got != 0 {
			t.Fatalf("NextRandom(0) = %d, want 0", got)
		}
	}
	if reg.n != 0 {
		t.Fatalf("NextRandom(0) read the register %d times", reg.n)
	}
}

func TestNextRandomMostSignificantBitFirst(t *testing.T) {
	cases := []struct {
		name  string
		reads []uint32
		width int
		want  uint32
	}{
		{"single one", []uint32{1}, 1, 1},
		{"single zero", []uint32{0}, 1, 0},
		{"msb first", []uint32{1, 0, 0}, 3, 0b100},
		{"lsb last", []uint32{0, 0, 1}, 3, 0b001},
		{"mixed", []uint32{1, 0, 1, 1}, 4, 0b1011},
		{"upper bits ignored", []uint32{0xfffffffe, 0x3, 0x80000000, 0x5}, 4, 0b0101},
		{"full width", []uint32{1}, 32, 0xffffffff},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := &scripted{reads: tc.reads}
			got := NewSampler(reg).NextRandom(tc.width)
			if got != tc.want {
				t.Fatalf("NextRandom(%d) = %#x, want %#x", tc.width, got, tc.want)
			}
			if reg.n != tc.width {
				t.Fatalf("register read %d times, want %d", reg.n, tc.width)
			}
		})
	}
}

func TestNextRandomRejectsOversizedWidth(t *testing.T) {
	for _, width := range []int{-1, MaxBits + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NextRandom(%d) should panic", width)
				}
			}()
			NewSampler(&scripted{reads: []uint32{1}}).NextRandom(width)
		}()
	}
}

func TestPCGDeterministic(t *testing.T) {
	a := NewSampler(NewPCG(42))
	b := NewSampler(NewPCG(42))
	for i := 0; i < 64; i++ {
		if x, y := a.NextRandom(32), b.NextRandom(32); x != y {
			t.Fatalf("draw %d differs for the same seed: %#x vs %#x", i, x, y)
		}
	}
}

func TestSystemRegisterYieldsBits(t *testing.T) {
	reg := NewSystem()
	ones := 0
	for i := 0; i < 4096; i++ {
		b := reg.Bit()
		if b > 1 {
			t.Fatalf("system register returned %d, want a single bit", b)
		}
		ones += int(b)
	}
	if ones == 0 || ones == 4096 {
		t.Fatalf("system register produced a constant stream (%d ones)", ones)
	}
}

func TestFromSeed(t *testing.T) {
	if _, ok := FromSeed(0).(*Sampler); !ok {
		t.Fatal("FromSeed(0) should return a sampler")
	}
	a, b := FromSeed(7), FromSeed(7)
	if a.NextRandom(32) != b.NextRandom(32) {
		t.Fatal("equal non-zero seeds should produce equal streams")
	}
}
