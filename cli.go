package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Every option falls back to an environment variable with this prefix when
// the flag is not given, so the daemon can be configured entirely from a
// service environment file.
const envPrefix = "BUTTOND_"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buttond [flags] COMMAND [ENDCOMMAND]",
		Short: "Run commands when GPIO buttons are pressed",
		Long: `buttond runs COMMAND whenever the button connected to the button pin is
pressed.  If ENDCOMMAND is given it runs a configurable number of seconds
after COMMAND.  With --allow-reset a press on the reset pin reboots the
machine.

Every option falls back to an environment variable (BUTTOND_COMMAND,
BUTTOND_WAIT, BUTTOND_BUTTON_PIN, ...) when not given on the command line.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Verbosity)
			daemon, err := NewDaemon(cfg, logger)
			if err != nil {
				return err
			}
			return daemon.Run(cmd.Context())
		},
	}
	fl := cmd.Flags()
	fl.Int("wait", DefaultWaitSeconds, "seconds to wait before running ENDCOMMAND")
	fl.Bool("allow-reset", false, "enable restarting the machine by button press")
	fl.Int("button-pin", DefaultButtonPin, "BCM pin to listen on for the button")
	fl.Int("reset-pin", DefaultResetPin, "BCM pin to listen on for the reset signal")
	fl.CountP("verbose", "v", "increase verbosity, -v is info and -vv is debug")
	fl.BoolP("quiet", "q", false, "do not forward command output to the log")
	fl.String("wiring", string(WiringActiveLow), "button wiring, active-low or active-high")
	fl.String("config", "", "path to a JSON config file")
	fl.String("log-file", "", "append timestamped events to this file")
	return cmd
}

// resolveConfig assembles the configuration in precedence order: flags
// override environment variables, which override the config file, which
// overrides the built-in defaults.
func resolveConfig(cmd *cobra.Command, args []string) (Config, error) {
	fl := cmd.Flags()
	cfg := DefaultConfig()

	path, _ := fl.GetString("config")
	if !fl.Changed("config") {
		if v, ok := os.LookupEnv(envPrefix + "CONFIG"); ok {
			path = v
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	intOption(fl, "wait", "WAIT", &cfg.WaitSeconds)
	intOption(fl, "button-pin", "BUTTON_PIN", &cfg.ButtonPin)
	intOption(fl, "reset-pin", "RESET_PIN", &cfg.ResetPin)
	boolOption(fl, "allow-reset", "ALLOW_RESET", &cfg.AllowReset)
	boolOption(fl, "quiet", "QUIET", &cfg.Quiet)
	stringOption(fl, "log-file", "LOG_FILE", &cfg.LogFile)

	wiring := string(cfg.Wiring)
	stringOption(fl, "wiring", "WIRING", &wiring)
	cfg.Wiring = Wiring(wiring)

	if fl.Changed("verbose") {
		cfg.Verbosity, _ = fl.GetCount("verbose")
	} else if v, ok := lookupEnvInt("VERBOSE"); ok {
		cfg.Verbosity = v
	}

	if len(args) > 0 {
		cfg.Command = args[0]
	} else if v, ok := os.LookupEnv(envPrefix + "COMMAND"); ok {
		cfg.Command = v
	}
	if len(args) > 1 {
		cfg.EndCommand = args[1]
	} else if v, ok := os.LookupEnv(envPrefix + "ENDCOMMAND"); ok {
		cfg.EndCommand = v
	}

	// Negative waits clamp to zero rather than erroring, matching the
	// flag's documented range.
	if cfg.WaitSeconds < 0 {
		cfg.WaitSeconds = 0
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func intOption(fl *pflag.FlagSet, name, env string, dst *int) {
	if fl.Changed(name) {
		*dst, _ = fl.GetInt(name)
		return
	}
	if v, ok := lookupEnvInt(env); ok {
		*dst = v
	}
}

func boolOption(fl *pflag.FlagSet, name, env string, dst *bool) {
	if fl.Changed(name) {
		*dst, _ = fl.GetBool(name)
		return
	}
	if v, ok := os.LookupEnv(envPrefix + env); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func stringOption(fl *pflag.FlagSet, name, env string, dst *string) {
	if fl.Changed(name) {
		*dst, _ = fl.GetString(name)
		return
	}
	if v, ok := os.LookupEnv(envPrefix + env); ok {
		*dst = v
	}
}

func lookupEnvInt(env string) (int, bool) {
	v, ok := os.LookupEnv(envPrefix + env)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
