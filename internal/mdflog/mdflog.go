// Package mdflog holds the package-level logger shared by go-mdf's
// decoders. It is silent by default; callers opt in via mdf.SetLogger.
package mdflog

import (
	"io"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.Disabled)

// Set replaces the package logger. Called from the root facade's
// mdf.SetLogger so library internals never import zerolog configuration
// directly from caller code.
func Set(l zerolog.Logger) {
	logger = l
}

// L returns the current logger.
func L() *zerolog.Logger {
	return &logger
}

// DroppedRow logs a row dropped because one of its columns failed to
// decode, per the "drop and log" propagation policy.
func DroppedRow(table string, err error) {
	logger.Warn().Str("table", table).Err(err).Msg("dropped row: column decode failed")
}

// SkippedRecord logs a non-Primary record encountered where a Primary was
// expected (catalog walk or table heap walk).
func SkippedRecord(table string, kind string) {
	logger.Warn().Str("table", table).Str("record_type", kind).Msg("skipped non-primary record")
}
