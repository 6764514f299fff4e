// Package logger provides the charmbracelet/log loggers used by the demo driver.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing text to stdout at the global log level
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stdout, prefix, log.GetLevel())
}

// NewWithWriter creates a logger writing text to _w_ at _level_
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

// ParseLevel maps a level name to a log.Level, falling back to info
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
