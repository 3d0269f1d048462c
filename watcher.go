package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Watcher binds one pin to the action fired on each press.  The button and
// reset watchers are the same type with different actions.
type Watcher struct {
	Name   string
	Pin    PinWatcher
	Action Action
	Once   bool // stop after the first action (reset watcher)
	Logger zerolog.Logger
	Events *EventLog
}

// Run blocks, firing the action once per debounced press, until ctx is done
// or, for a one-shot watcher, the action has fired.  The loop is
// synchronous: presses that arrive while the action runs are discarded
// before the next wait, so each press triggers at most one action and no
// backlog builds up.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		if err := w.Pin.WaitForPress(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for press on %s: %w", w.Name, err)
		}
		w.Logger.Debug().Str("watcher", w.Name).Msg("press detected")
		w.Events.Printf("%s pressed", w.Name)
		err := w.Action.Execute(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			w.Logger.Error().Err(err).Str("watcher", w.Name).Str("action", w.Action.Name()).Msg("action failed")
		}
		if w.Once {
			return err
		}
		w.Pin.Drain()
	}
}
