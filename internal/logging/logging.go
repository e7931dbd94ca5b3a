// Package logging configures the global zerolog logger for the binaries.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup writes human-readable logs to stderr tagged with the service name.
func Setup(service string) zerolog.Logger {
	return SetupWriter(os.Stderr, service)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, service string) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true})
	log.Logger = log.With().Str("service", service).Logger()
	return log.Logger
}
