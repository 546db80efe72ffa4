// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineOptions returns the virtual machine configuration for the
// program options. Instruction tracing is enabled in debug mode.
func MachineOptions(opts options.Program) chip8.Options {
	return chip8.Options{
		HighResolution: opts.HighRes,
		TimerInterval:  chip8.DefaultTimerInterval,
		Random:         chip8.NewRandomSource(opts.Seed),
		Trace:          opts.Debug,
	}
}
