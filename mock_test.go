package main

// Test doubles shared by the package tests: a runner that records commands,
// a pin pressed from the test, and a GPIO handing out such pins.

import (
	"context"
	"sync"
)

type fakeRunner struct {
	mu    sync.Mutex
	calls chan string
	out   []byte
	err   error
	ran   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{calls: make(chan string, 16)}
}

func (r *fakeRunner) Run(ctx context.Context, command string) ([]byte, error) {
	r.mu.Lock()
	r.ran = append(r.ran, command)
	r.mu.Unlock()
	r.calls <- command
	return r.out, r.err
}

func (r *fakeRunner) commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ran...)
}

type fakePin struct {
	presses chan struct{}
	drained chan struct{}
}

func newFakePin() *fakePin {
	return &fakePin{
		presses: make(chan struct{}, 8),
		drained: make(chan struct{}, 8),
	}
}

func (p *fakePin) press() { p.presses <- struct{}{} }

func (p *fakePin) WaitForPress(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.presses:
		return nil
	}
}

func (p *fakePin) Drain() {
	for {
		select {
		case <-p.presses:
		default:
			select {
			case p.drained <- struct{}{}:
			default:
			}
			return
		}
	}
}

func (p *fakePin) Close() error { return nil }

type fakeGPIO struct {
	mu   sync.Mutex
	pins map[int]*fakePin
}

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{pins: map[int]*fakePin{}}
}

func (g *fakeGPIO) Open(pin int, wiring Wiring) (PinWatcher, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := newFakePin()
	g.pins[pin] = p
	return p, nil
}

func (g *fakeGPIO) Close() error { return nil }

func (g *fakeGPIO) pin(n int) *fakePin {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pins[n]
}
