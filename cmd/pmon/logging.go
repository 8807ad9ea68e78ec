// ABOUTME: Builds the zerolog logger for the CLI from the --log-level flag.
// ABOUTME: Logs go to stderr through a ConsoleWriter so stdout carries only progress output.
package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// newLogger returns a console logger filtered at level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "parse log level %q", level)
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// interactiveLogger raises l to at least warn. Stderr shares the terminal
// with the alternate screen, so chattier lines would tear the frame.
func interactiveLogger(l zerolog.Logger) zerolog.Logger {
	if l.GetLevel() < zerolog.WarnLevel {
		return l.Level(zerolog.WarnLevel)
	}
	return l
}
