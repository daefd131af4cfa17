// Package entropy assembles unsigned integers from single-bit random
// samples. On the device the samples come from the ring oscillator; on the
// desktop from a seeded PCG or the operating system.
package entropy

import "fmt"

// MaxBits is the widest value NextRandom can assemble.
const MaxBits = 32

// Source produces uniformly distributed unsigned integers of a requested
// bit width.
type Source interface {
	NextRandom(bitWidth int) uint32
}

// Register is a hardware-style random bit register. Only bit 0 of each
// read is used, and every call must sample fresh state.
type Register interface {
	Bit() uint32
}

// Sampler turns a Register into a Source by reading one bit at a time.
type Sampler struct {
	reg Register
}

// NewSampler returns a Sampler reading from reg.
func NewSampler(reg Register) *Sampler {
	return &Sampler{reg: reg}
}

// NextRandom reads bitWidth bits from the register, most significant bit
// first. bitWidth must be in [0, MaxBits]; anything else is a caller bug
// and panics.
func (s *Sampler) NextRandom(bitWidth int) uint32 {
	if bitWidth < 0 || bitWidth > MaxBits {
		panic(fmt.Sprintf("entropy: bit width %d out of range [0,%d]", bitWidth, MaxBits))
	}
	var v uint32
	for i := 0; i < bitWidth; i++ {
		v = v<<1 | (s.reg.Bit() & 0x1)
	}
	return v
}

// FromSeed returns a Source for desktop builds. A zero seed selects the
// operating system's entropy pool; any other value a reproducible PCG.
func FromSeed(seed int64) Source {
	if seed == 0 {
		return NewSampler(NewSystem())
	}
	return NewSampler(NewPCG(seed))
}
