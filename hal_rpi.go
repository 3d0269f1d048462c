//go:build linux && !disablegpio
// +build linux,!disablegpio

// Raspberry Pi implementation of the HAL using the periph.io library.  When
// cross-compiling on other platforms or when the build tag "disablegpio" is
// specified, hal_stub.go is used instead.

package main

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// debounceSettle is how long a pin must hold its level after an edge before
// the edge counts as a press.  Mechanical switches bounce for a few
// milliseconds; 15ms is comfortably past that without being noticeable.
const debounceSettle = 15 * time.Millisecond

type periphGPIO struct{}

// openGPIO initialises periph host state.  host.Init can safely be called
// multiple times; subsequent calls are no-ops.
func openGPIO() (GPIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}
	return periphGPIO{}, nil
}

// Open configures the pin as a button input.  Pins are addressed by their
// BCM numbers.
func (periphGPIO) Open(pin int, wiring Wiring) (PinWatcher, error) {
	p := gpioreg.ByName(fmt.Sprintf("GPIO%d", pin))
	if p == nil {
		return nil, fmt.Errorf("no such pin GPIO%d", pin)
	}
	pull, edge, pressed := gpio.PullUp, gpio.FallingEdge, gpio.Low
	if wiring == WiringActiveHigh {
		pull, edge, pressed = gpio.PullDown, gpio.RisingEdge, gpio.High
	}
	if err := p.In(pull, edge); err != nil {
		return nil, fmt.Errorf("configure GPIO%d: %w", pin, err)
	}
	return &periphPin{pin: p, pressed: pressed}, nil
}

func (periphGPIO) Close() error { return nil }

type periphPin struct {
	pin     gpio.PinIO
	pressed gpio.Level
}

// WaitForPress blocks until a debounced press edge.  The one second timeout
// on WaitForEdge keeps the loop responsive to ctx cancellation.  After an
// edge the pin is read back once the contacts have settled; bounces that do
// not hold the pressed level are discarded.
func (p *periphPin) WaitForPress(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !p.pin.WaitForEdge(time.Second) {
			continue
		}
		time.Sleep(debounceSettle)
		if p.pin.Read() == p.pressed {
			return nil
		}
	}
}

// Drain consumes edges the kernel latched while the caller was running an
// action.
func (p *periphPin) Drain() {
	for p.pin.WaitForEdge(time.Millisecond) {
	}
}

func (p *periphPin) Close() error {
	return p.pin.Halt()
}
