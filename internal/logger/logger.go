// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process logger. It discards output until Init is called.
var Log = zerolog.Nop()

// Init initializes the global logger
func Init(env string) zerolog.Logger {
	Log = New(env, os.Stdout)
	return Log
}

// New builds a logger writing to out. Development gets pretty console
// output with caller info, anything else gets JSON.
func New(env string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Caller().
			Logger()
	}
	return zerolog.New(out).
		With().
		Timestamp().
		Logger()
}
