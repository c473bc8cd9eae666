// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the application logger. It discards everything until Setup runs.
var Logger = zerolog.Nop()

// ParseLevel maps a config level name to a zerolog level. Unknown names fall
// back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "TRACE":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup sets the global level and points Logger at a console writer on out
// (stderr when nil). Colors are only used on the standard streams.
func Setup(level string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	zerolog.SetGlobalLevel(ParseLevel(level))

	Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    out != os.Stderr && out != os.Stdout,
	}).With().Timestamp().Logger()

	Logger.Info().Str("loglevel", zerolog.GlobalLevel().String()).Msg("Logging set up")
	return Logger
}

// For returns a child logger tagged with a component name.
func For(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}
