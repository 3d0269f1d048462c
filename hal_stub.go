//go:build !linux || disablegpio
// +build !linux disablegpio

// Stub implementation of the HAL for machines without GPIO hardware.
// Presses are simulated with Unix signals: the first pin opened (the
// button) is pressed by SIGHUP, the second (reset) by SIGUSR1.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

var stubSignals = []os.Signal{syscall.SIGHUP, syscall.SIGUSR1}

type stubGPIO struct {
	opened int
}

func openGPIO() (GPIO, error) {
	return &stubGPIO{}, nil
}

func (g *stubGPIO) Open(pin int, wiring Wiring) (PinWatcher, error) {
	if g.opened >= len(stubSignals) {
		return nil, errors.New("stub gpio supports two pins")
	}
	sig := stubSignals[g.opened]
	g.opened++
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sig)
	return &stubPin{ch: ch}, nil
}

func (g *stubGPIO) Close() error { return nil }

type stubPin struct {
	ch chan os.Signal
}

func (p *stubPin) WaitForPress(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ch:
		return nil
	}
}

func (p *stubPin) Drain() {
	select {
	case <-p.ch:
	default:
	}
}

func (p *stubPin) Close() error {
	signal.Stop(p.ch)
	return nil
}
