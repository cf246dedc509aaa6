// Package log holds the process logger.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It writes JSON to stderr until Setup is called.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// ParseLevel converts a level name to a zerolog level. Unknown names map to warn.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// ValidLevel reports whether s is an accepted level name. The empty string is accepted.
func ValidLevel(s string) bool {
	switch s {
	case "", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// Setup replaces Logger with one writing to w at the given level. If console is true,
// output is formatted for humans instead of JSON.
func Setup(w io.Writer, level string, console bool) {
	if console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	Logger = zerolog.New(w).With().Timestamp().Logger().Level(ParseLevel(level))
}

// OnError calls the function f, and if it's not nil, logs the error returned.
func OnError(f func() error) {
	if err := f(); err != nil {
		Error(err)
	}
}

// Error logs an error message.
func Error(e error) {
	Logger.Error().Err(e).Send()
}
