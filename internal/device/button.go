//go:build rp2040

package device

import "machine"

// ButtonX is the Pico Display button used for reseeding.
const ButtonX = machine.GP14

// Button is an active-low push button read as a core.ResetInput.
type Button struct {
	pin machine.Pin
}

// NewButton configures pin as a pulled-up input.
func NewButton(pin machine.Pin) Button {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return Button{pin: pin}
}

// ResetRequested reports whether the button is held down.
func (b Button) ResetRequested() bool { return !b.pin.Get() }
