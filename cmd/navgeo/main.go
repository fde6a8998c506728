// Package main provides the navgeo command, which runs the navigation
// geometry operations on numbers given on the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tidwall/navgeo/internal/config"
	"github.com/tidwall/navgeo/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	logLevel   string
	unit       string
	format     string
}

// run parses args, executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	// flags take precedence over the file
	if fs.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if fs.Changed("unit") {
		cfg.Output.Unit = opts.unit
	}
	if fs.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logger.NewLogger(cfg.Logging.Env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if err := execute(cfg, fs.Args(), stdout, stderr, log); err != nil {
		log.Error("command failed", zap.Strings("args", fs.Args()), zap.Error(err))
		return 1
	}
	return 0
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("navgeo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	// stop at the command name so negative coordinates are not read as flags
	fs.SetInterspersed(false)

	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVarP(&opts.unit, "unit", "u", "nm", "distance unit: nm, m, km")
	fs.StringVarP(&opts.format, "format", "f", "yaml", "output format: yaml, json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: navgeo [flags] <command> [command flags] [--] args...\n\nCommands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-10s %s\n", c.name, c.usage())
		}
		fmt.Fprintf(stderr, "\nAngles are in degrees. Use -- before a negative first argument.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs
}
