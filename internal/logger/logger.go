// Package logger builds the zerolog loggers used across the application.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level is empty or unknown
const DefaultLevel = zerolog.InfoLevel

// New creates a JSON logger with timestamps writing to writer
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human readable logger on stderr
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return New(consoleWriter, level)
}

// ParseLevel maps a configured level name to a zerolog level
func ParseLevel(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return DefaultLevel
	}
	return level
}

// Component returns a child logger tagged with the component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
