package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValidWithCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Command = "echo hi"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultButtonPin, cfg.ButtonPin)
	assert.Equal(t, DefaultResetPin, cfg.ResetPin)
	assert.Equal(t, DefaultWaitSeconds, cfg.WaitSeconds)
	assert.Equal(t, WiringActiveLow, cfg.Wiring)
}

func TestValidate(t *testing.T) {
	base := DefaultConfig()
	base.Command = "echo hi"

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"missing command", func(c *Config) { c.Command = "" }, "no command"},
		{"button pin too high", func(c *Config) { c.ButtonPin = 28 }, "out of range"},
		{"button pin negative", func(c *Config) { c.ButtonPin = -1 }, "out of range"},
		{"reset pin ignored when reset disabled", func(c *Config) { c.ResetPin = 99 }, ""},
		{"reset pin checked when reset enabled", func(c *Config) { c.AllowReset = true; c.ResetPin = 99 }, "out of range"},
		{"shared pins", func(c *Config) { c.AllowReset = true; c.ResetPin = c.ButtonPin }, "cannot share"},
		{"empty reboot command", func(c *Config) { c.AllowReset = true; c.RebootCommand = "" }, "reboot command"},
		{"negative wait", func(c *Config) { c.WaitSeconds = -1 }, "not be negative"},
		{"unknown wiring", func(c *Config) { c.Wiring = "sideways" }, "unknown wiring"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buttond.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"button_pin": 17, "wait_seconds": 5, "quiet": true}`), 0644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.loadFile(path))
	assert.Equal(t, 17, cfg.ButtonPin)
	assert.Equal(t, 5, cfg.WaitSeconds)
	assert.True(t, cfg.Quiet)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultResetPin, cfg.ResetPin)
	assert.Equal(t, defaultRebootCommand, cfg.RebootCommand)
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.loadFile(filepath.Join(t.TempDir(), "nope.json")))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	cfg := DefaultConfig()
	err := cfg.loadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
