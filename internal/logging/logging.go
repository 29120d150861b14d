// Package logging builds the zerolog logger used by skyroute commands.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a console-format zerolog.Logger writing to w at the given
// level. An empty or unknown level falls back to info.
//
// Commands log to stderr so stdout stays reserved for the JSON result.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: w}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
