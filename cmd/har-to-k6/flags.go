package main

import (
	"github.com/spf13/cobra"

	"har-to-k6/internal/config"
)

// settingsFlags are the flags that override config file values.
type settingsFlags struct {
	configPath string
	format     string
	onInvalid  string
	workers    int
	logLevel   string
	logFormat  string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.format, "format", "", "archive format: auto, json or yaml")
	fs.StringVar(&f.onInvalid, "on-invalid", "", "invalid entry policy: abort or skip")
	fs.IntVar(&f.workers, "workers", 0, "entries processed in parallel (0 means one per CPU)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
}

// load reads the config file, if any, applies the flags that were set
// and validates the result.
func (f *settingsFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = f.format
	}

	if fs.Changed("on-invalid") {
		cfg.OnInvalid = config.OnInvalid(f.onInvalid)
	}

	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}

	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	return cfg, nil
}
