package main

// This file defines the hardware abstraction layer (HAL) for GPIO access.
// The daemon never touches pins directly: it asks a GPIO for a PinWatcher
// and blocks on WaitForPress.  Two implementations exist, selected by build
// tag: hal_rpi.go drives real pins through periph.io on Linux, and
// hal_stub.go simulates presses with signals so the daemon can be run and
// tested on a desktop machine without hardware.

import "context"

// GPIO grants access to the host's pins.  Open configures a pin as a
// debounced button input according to its wiring.  An error from openGPIO
// or Open means the GPIO subsystem or the pin is unusable and is fatal at
// startup.
type GPIO interface {
	Open(pin int, wiring Wiring) (PinWatcher, error)
	Close() error
}

// PinWatcher waits for presses on a single pin.  Each watcher owns exactly
// one pin; watchers never share state.
type PinWatcher interface {
	// WaitForPress blocks until the pin reports a debounced press edge or
	// ctx is done.
	WaitForPress(ctx context.Context) error

	// Drain discards any press edge latched while the caller was busy, so
	// presses during an action do not queue up a second one.
	Drain()

	Close() error
}
