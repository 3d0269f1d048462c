package main

import (
	"context"
	"os/exec"
)

// Runner abstracts command execution so actions can be tested without
// spawning processes.
type Runner interface {
	// Run executes a command and returns its combined stdout and stderr.
	// A non-zero exit is reported as an *exec.ExitError.
	Run(ctx context.Context, command string) ([]byte, error)
}

// shellRunner runs commands through "sh -c" so that COMMAND and ENDCOMMAND
// may carry arguments and shell syntax.
type shellRunner struct{}

func (shellRunner) Run(ctx context.Context, command string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	return cmd.CombinedOutput()
}
