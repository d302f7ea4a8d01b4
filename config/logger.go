// ABOUTME: Structured logger construction on charmbracelet/log
// ABOUTME: Shared by the gateway client, store and commands
package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a level name (debug, info, warn, error, fatal) to a log level.
func ParseLevel(name string) (log.Level, error) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// NewLogger writes timestamped, prefixed entries to w. Unknown level names
// fall back to warn.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          AppName,
		Level:           lvl,
	})
}

// Discard is a logger that drops everything, for tests and quiet paths.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
