package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger: pretty console output in development,
// JSON lines everywhere else.
func Init(env, level string) {
	var w io.Writer

	if env == "development" || env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		w = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zlog = zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", "millage").
		Logger()
}

// Get returns the global logger.
func Get() *zerolog.Logger {
	return &zlog
}

func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}
