package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Single puzzle mode.
	Day       int
	Part      int
	InputPath string

	// Batch mode; takes precedence over single puzzle mode.
	ManifestPaths []string
	FailFast      bool

	// List only prints the registered solvers.
	List bool

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// Mode is what a Config asks the App to do.
type Mode int

const (
	ModeSingle Mode = iota
	ModeManifest
	ModeList
)

// Mode reports which of the run modes the config selects.
func (c *Config) Mode() Mode {
	switch {
	case c.List:
		return ModeList
	case len(c.ManifestPaths) > 0:
		return ModeManifest
	default:
		return ModeSingle
	}
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Mode() != ModeSingle {
		return &cfg, nil
	}
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Day < 1 || cfg.Day > 25 {
		return nil, fmt.Errorf("day must be between 1 and 25, got %d", cfg.Day)
	}
	if cfg.Part < 1 || cfg.Part > 2 {
		return nil, fmt.Errorf("part must be 1 or 2, got %d", cfg.Part)
	}
	return &cfg, nil
}
