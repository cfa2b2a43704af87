// Package logger provides a configured zerolog logger for the nanocrond
// driver.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing to stdout, tagged with component and
// configured to the given level. An unrecognized level falls back to info.
func New(component, level, format string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	var writer = os.Stdout
	var out zerolog.Logger
	if format == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: writer})
	} else {
		out = zerolog.New(writer)
	}

	return out.Level(parsed).With().
		Str("component", component).
		Timestamp().
		Logger()
}
