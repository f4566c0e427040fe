package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates the process logger. Supported levels are the zerolog level
// names ("trace" .. "error"); format is "console" or "json".
func New(level, format string) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var base zerolog.Logger
	if strings.ToLower(format) == "console" {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		base = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	} else {
		base = zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	}
	return &base
}
