package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"incident-board/config"

	"github.com/rs/zerolog"
)

const prodStr string = "production"

func Init(cfg *config.Config) *zerolog.Logger {
	return New(os.Stdout, cfg.Env, cfg.ServiceName)
}

// New builds the base logger: JSON lines in production, a coloured console
// writer with caller info everywhere else.
func New(out io.Writer, env, service string) *zerolog.Logger {

	// Set global level based on environment
	switch env {
	case prodStr:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var baseLogger zerolog.Logger

	if env == prodStr {
		baseLogger = zerolog.New(out)
	} else {
		baseLogger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    false,
			PartsOrder: []string{
				"time", "level", "caller", "service", "env", "message", "err",
			},
			FormatLevel: func(i any) string {
				return strings.ToUpper(fmt.Sprintf("[%s]", i))
			},
			FormatCaller: func(caller any) string {
				return fmt.Sprintf("(%s)", caller)
			},
		})
	}

	baseLogger = baseLogger.With().
		Timestamp().
		Str("service", service).
		Str("env", env).
		Logger()

	// Add caller info for dev
	if env != prodStr {
		baseLogger = baseLogger.With().Caller().Logger()
	}

	log.SetFlags(0)
	log.SetOutput(baseLogger)

	return &baseLogger
}
