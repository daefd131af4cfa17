// Package device binds the simulation to a Raspberry Pi Pico with a
// Pimoroni Pico Display: the ring oscillator as entropy register, the
// ST7789 panel as frame sink and the X button as reset input. Everything
// except this comment builds only for the rp2040 target under TinyGo.
package device
