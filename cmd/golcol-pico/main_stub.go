//go:build !rp2040

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "golcol-pico is firmware for the Raspberry Pi Pico.")
	fmt.Fprintln(os.Stderr, "Build it with `tinygo flash -target=pico ./cmd/golcol-pico`.")
	os.Exit(2)
}
