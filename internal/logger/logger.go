// Package logger builds the zerolog logger shared by the cli and the search node
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w; level comes from MINIGREP_LOG_LEVEL, fallback when unset or invalid
func New(w io.Writer, lookup model.EnvLookup, fallback zerolog.Level) zerolog.Logger {
	level := fallback
	if lookup != nil {
		raw, _ := lookup(model.LogLevelEnv)
		if raw = strings.ToLower(strings.TrimSpace(raw)); raw != "" {
			if parsed, err := zerolog.ParseLevel(raw); err == nil {
				level = parsed
			}
		}
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
