// Package logging builds the zerolog logger shared by every component.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level. Format "json" writes one JSON
// object per line; anything else writes human-readable console output.
// Unknown levels fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
