package main

// This file defines the pluggable actions a watcher fires when its pin
// reports a press.

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/WatchBeam/clock"
	"github.com/rs/zerolog"
)

// Action is what a watcher runs on each press.  Execute may block for as
// long as it needs; the watcher ignores further presses until it returns.
type Action interface {
	Name() string
	Execute(ctx context.Context) error
}

// CommandAction runs the press command and, when an end command is
// configured, runs it again after the configured wait.  A failing command
// is logged and swallowed: a misbehaving script must not stop the watcher.
type CommandAction struct {
	Runner     Runner
	Clock      clock.Clock
	Command    string
	EndCommand string
	Wait       time.Duration
	Quiet      bool
	Logger     zerolog.Logger
	Events     *EventLog
}

func (a *CommandAction) Name() string { return "command" }

// Execute runs the two-stage dispatch.  The only error it returns is ctx
// cancellation during the wait; command failures are non-fatal.
func (a *CommandAction) Execute(ctx context.Context) error {
	a.runOne(ctx, a.Command)
	if a.EndCommand == "" {
		return nil
	}
	a.Logger.Debug().Dur("wait", a.Wait).Msg("waiting before end command")
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.Clock.After(a.Wait):
	}
	a.runOne(ctx, a.EndCommand)
	return nil
}

// runOne executes a single command, logging its exit status and, unless
// quiet, its output.
func (a *CommandAction) runOne(ctx context.Context, command string) {
	a.Logger.Info().Str("command", command).Msg("running command")
	out, err := a.Runner.Run(ctx, command)
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		a.Logger.Warn().Int("code", exitErr.ExitCode()).Str("command", command).Msg("command exited with error code")
	case err != nil:
		a.Logger.Error().Err(err).Str("command", command).Msg("error running command")
		return
	}
	a.Events.Printf("ran %q", command)
	if !a.Quiet && len(out) > 0 {
		a.Logger.Info().Msgf("command output:\n%s", out)
	}
}

// RebootAction restarts the host machine.  Normally the process dies with
// the machine before the call returns; an error means the reboot command
// itself could not be run.
type RebootAction struct {
	Runner  Runner
	Command string
	Logger  zerolog.Logger
	Events  *EventLog
}

func (a *RebootAction) Name() string { return "reboot" }

func (a *RebootAction) Execute(ctx context.Context) error {
	a.Logger.Info().Msg("reset button pressed, rebooting machine")
	a.Events.Printf("reboot requested")
	if _, err := a.Runner.Run(ctx, a.Command); err != nil {
		return fmt.Errorf("could not reboot machine: %w", err)
	}
	return nil
}
