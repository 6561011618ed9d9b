package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. Dev mode logs at debug level to a console writer,
// prod mode writes JSON lines at info level.
func New(appMode string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appMode == "dev" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "bloodlink-web").
		Logger()

	if appMode == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return logger
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard)
}
