// Package logging builds the zerolog logger shared by the store and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"todo-list/internal/config"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DebugEnvVar forces debug logging when set to any value
const DebugEnvVar = "TD_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TD_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// New creates a logger writing to w according to cfg.
// TD_DEBUG forces debug level regardless of cfg.Level.
func New(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if DebugEnabled() {
		level = zerolog.DebugLevel
	}

	switch cfg.Format {
	case FormatJSON:
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.DateTime,
			NoColor:    cfg.NoColor,
		}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, nil
}
