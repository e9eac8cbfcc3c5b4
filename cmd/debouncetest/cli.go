package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/rprtr258/imwidgets"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// parse builds the config from an optional YAML file and flags. Flags given
// explicitly override the file. shouldExit is true after -h.
func parse(args []string, output io.Writer) (cfg imwidgets.Config, shouldExit bool, err error) {
	flagSet := flag.NewFlagSet("debouncetest", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
debouncetest - debounced button and icon demo page.

Usage:
  debouncetest [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := imwidgets.DefaultConfig()
	configFlag := flagSet.String("config", "", "Path to a YAML config file.")
	addrFlag := flagSet.String("addr", defaults.Addr, "Address to listen on.")
	debugFlag := flagSet.Bool("debug", true, "Debug mode: debug logs, in-page callback errors, reload on server restart.")
	fpsFlag := flagSet.Int("fps", defaults.FPS, "Page update frames per second.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Log level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, true, nil
		}
		return cfg, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return cfg, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	cfg = defaults
	cfg.Debug = true
	if *configFlag != "" {
		cfg, err = imwidgets.LoadConfig(*configFlag)
		if err != nil {
			return cfg, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addrFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		}
	})
	if cfg.Debug && !isSet(flagSet, "log-level") && *configFlag == "" {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

func isSet(flagSet *flag.FlagSet, name string) bool {
	set := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
