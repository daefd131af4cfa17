//go:build rp2040

package device

import (
	"runtime/volatile"
	"unsafe"
)

const (
	roscBase            = 0x40060000
	roscRandomBitOffset = 0x1c
)

// ROSC is the ring oscillator RANDOMBIT register. Bit 0 of each read is a
// fresh sample of oscillator jitter.
type ROSC struct {
	reg *volatile.Register32
}

// NewROSC maps the RANDOMBIT register.
func NewROSC() ROSC {
	return ROSC{reg: (*volatile.Register32)(unsafe.Pointer(uintptr(roscBase + roscRandomBitOffset)))}
}

// Bit performs one volatile read of the register.
func (r ROSC) Bit() uint32 { return r.reg.Get() }
