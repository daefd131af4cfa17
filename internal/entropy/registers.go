package entropy

import (
	"crypto/rand"
	"encoding/binary"
	randv2 "math/rand/v2"
)

// PCG is a deterministic bit register backed by math/rand/v2.
type PCG struct {
	r *randv2.Rand
}

// NewPCG creates a PCG register from the provided seed.
func NewPCG(seed int64) *PCG {
	return &PCG{r: randv2.New(randv2.NewPCG(uint64(seed), 0))}
}

// Bit returns the next sample. Only the low bit is meaningful.
func (p *PCG) Bit() uint32 { return p.r.Uint32() }

// System reads bits from crypto/rand, eight bytes at a time.
type System struct {
	word uint64
	left int
}

// NewSystem returns a register backed by the operating system's entropy.
func NewSystem() *System { return &System{} }

// Bit returns the next buffered bit, refilling from crypto/rand as needed.
func (s *System) Bit() uint32 {
	if s.left == 0 {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			panic(err)
		}
		s.word = binary.LittleEndian.Uint64(b[:])
		s.left = 64
	}
	bit := uint32(s.word & 1)
	s.word >>= 1
	s.left--
	return bit
}
