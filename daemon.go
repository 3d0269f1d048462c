package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WatchBeam/clock"
	"github.com/rs/zerolog"
)

// Daemon owns the GPIO handle and the watchers built from the
// configuration.  It runs until a signal arrives, a watcher fails, or the
// reset watcher has issued its reboot.
type Daemon struct {
	cfg    Config
	logger zerolog.Logger
	events *EventLog
	gpio   GPIO
	clock  clock.Clock
	runner Runner
}

// NewDaemon validates the configuration and initialises the GPIO subsystem.
// Both failure modes are fatal: there is nothing to retry at this point.
func NewDaemon(cfg Config, logger zerolog.Logger) (*Daemon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := openGPIO()
	if err != nil {
		return nil, fmt.Errorf("gpio unavailable: %w", err)
	}
	var events *EventLog
	if cfg.LogFile != "" {
		events, err = OpenEventLog(cfg.LogFile)
		if err != nil {
			return nil, err
		}
	}
	return &Daemon{
		cfg:    cfg,
		logger: logger,
		events: events,
		gpio:   g,
		clock:  clock.C,
		runner: shellRunner{},
	}, nil
}

// Run opens the pins, starts the watchers and blocks.  The button watcher
// always runs; the reset watcher only when allow-reset is set.  Each
// watcher is its own goroutine blocking on its own pin; they share nothing.
func (d *Daemon) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer d.gpio.Close()
	defer d.events.Close()

	d.logger.Info().Int("pin", d.cfg.ButtonPin).Msg("enabling button")
	button, err := d.gpio.Open(d.cfg.ButtonPin, d.cfg.Wiring)
	if err != nil {
		return fmt.Errorf("button pin %d: %w", d.cfg.ButtonPin, err)
	}
	defer button.Close()

	watchers := []*Watcher{{
		Name: "button",
		Pin:  button,
		Action: &CommandAction{
			Runner:     d.runner,
			Clock:      d.clock,
			Command:    d.cfg.Command,
			EndCommand: d.cfg.EndCommand,
			Wait:       d.cfg.Wait(),
			Quiet:      d.cfg.Quiet,
			Logger:     d.logger,
			Events:     d.events,
		},
		Logger: d.logger,
		Events: d.events,
	}}

	if d.cfg.AllowReset {
		d.logger.Info().Int("pin", d.cfg.ResetPin).Msg("enabling reset button")
		reset, err := d.gpio.Open(d.cfg.ResetPin, d.cfg.Wiring)
		if err != nil {
			return fmt.Errorf("reset pin %d: %w", d.cfg.ResetPin, err)
		}
		defer reset.Close()
		watchers = append(watchers, &Watcher{
			Name: "reset",
			Pin:  reset,
			Once: true,
			Action: &RebootAction{
				Runner:  d.runner,
				Command: d.cfg.RebootCommand,
				Logger:  d.logger,
				Events:  d.events,
			},
			Logger: d.logger,
			Events: d.events,
		})
	}

	errCh := make(chan error, len(watchers))
	for _, w := range watchers {
		w := w
		go func() { errCh <- w.Run(ctx) }()
	}
	d.logger.Info().Msg("ready, waiting for button presses")
	d.events.Printf("daemon started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		d.logger.Info().Str("signal", sig.String()).Msg("shutting down")
		d.events.Printf("daemon stopped on %s", sig)
		return nil
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}
