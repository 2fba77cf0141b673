// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds charmbracelet loggers with the project defaults.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a stderr logger with the given prefix, honoring the global
// log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetVerbose raises the global level to debug when v is true.
func SetVerbose(v bool) {
	if v {
		log.SetLevel(log.DebugLevel)
	}
}
