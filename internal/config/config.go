// Package config handles application configuration and setup
package config

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/retroenv/gbdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = os.Stderr // stdout carries the listing
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// UseColor resolves the color mode for the given output. In auto mode colors are used
// if the output is a terminal and the NO_COLOR environment variable is not set.
func UseColor(mode string, output io.Writer) bool {
	switch mode {
	case options.ColorAlways:
		return true
	case options.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := output.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(file.Fd())
}
