package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger carries ambient diagnostics (dropped variants, store capacity).
// User-facing errors and reports never go through it: the CLI contract pins
// those to plain stderr/stdout writes. Tests run against the discard logger.
var logger = zerolog.New(io.Discard)

// setupLogger points ambient diagnostics at stderr. Warnings always show;
// verbose additionally surfaces the decoder's debug output.
func setupLogger(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()
}
