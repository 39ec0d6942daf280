package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger configures console logging. The game's progress lines are
// Info level; --verbose raises them into view, otherwise only warnings
// surface.
func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.InfoLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}
