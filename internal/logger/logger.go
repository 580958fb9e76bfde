package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup builds the service logger and installs it as the zerolog global
// so package-level log calls share the same sink.
//   - level: trace, debug, info, warn, error, fatal or panic
//   - format: "pretty" for human-readable dev output, anything else is JSON
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer = os.Stdout
	if strings.EqualFold(format, "pretty") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	log.Logger = logger
	return logger
}
