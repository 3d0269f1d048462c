package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	// DefaultButtonPin and DefaultResetPin match the wiring of the reference
	// hardware; both are overridable per deployment.
	DefaultButtonPin = 5
	DefaultResetPin  = 6

	// DefaultWaitSeconds is the delay between the command and the end
	// command when --wait is not given.
	DefaultWaitSeconds = 120

	defaultRebootCommand = "reboot -f"

	// maxPin is the highest BCM pin number broken out on a 40-pin header.
	maxPin = 27
)

// DefaultConfig returns the configuration the daemon runs with when nothing
// else is specified.
func DefaultConfig() Config {
	return Config{
		ButtonPin:     DefaultButtonPin,
		ResetPin:      DefaultResetPin,
		WaitSeconds:   DefaultWaitSeconds,
		RebootCommand: defaultRebootCommand,
		Wiring:        WiringActiveLow,
	}
}

// loadFile overlays values from a JSON config file onto c.  A missing file
// is not an error so a freshly installed daemon can run on flags alone;
// an unreadable or malformed file is fatal at startup.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("unable to read config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

// Validate checks the assembled configuration.  Any error here is fatal at
// startup: a daemon listening on the wrong pin is worse than one that
// refuses to start.
func (c Config) Validate() error {
	if c.Command == "" {
		return errors.New("no command given")
	}
	if err := validPin("button", c.ButtonPin); err != nil {
		return err
	}
	if c.AllowReset {
		if err := validPin("reset", c.ResetPin); err != nil {
			return err
		}
		if c.ResetPin == c.ButtonPin {
			return fmt.Errorf("button and reset cannot share pin %d", c.ButtonPin)
		}
		if c.RebootCommand == "" {
			return errors.New("reboot command must not be empty")
		}
	}
	if c.WaitSeconds < 0 {
		return fmt.Errorf("wait must not be negative, got %d", c.WaitSeconds)
	}
	switch c.Wiring {
	case WiringActiveLow, WiringActiveHigh:
	default:
		return fmt.Errorf("unknown wiring %q", c.Wiring)
	}
	return nil
}

// Wait returns the configured delay between the two commands.
func (c Config) Wait() time.Duration {
	return time.Duration(c.WaitSeconds) * time.Second
}

func validPin(name string, pin int) error {
	if pin < 0 || pin > maxPin {
		return fmt.Errorf("%s pin %d out of range 0..%d", name, pin, maxPin)
	}
	return nil
}
