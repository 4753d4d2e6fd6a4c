// Package zerologx backs the logging concern with zerolog. Importing the
// package registers a provider that installs a console logger, configured
// from the environment, as the process-wide default.
package zerologx

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/globalmentor/csar"
	"github.com/globalmentor/csar/concern/logging"
)

const (
	EnvLogLevel     = "CSAR_LOG_LEVEL"
	EnvLogTimestamp = "CSAR_LOG_TIMESTAMP"
	EnvLogNoColor   = "CSAR_LOG_NOCOLOR"
)

// Concern adapts a zerolog logger to the logging concern contract.
type Concern struct {
	logger zerolog.Logger
}

// New wraps an existing zerolog logger.
func New(logger zerolog.Logger) *Concern {
	return &Concern{logger: logger}
}

// NewConsole builds a console-writer logger configured from the environment.
func NewConsole() *Concern {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    envBool(EnvLogNoColor, false),
	}
	logger := zerolog.New(output).Level(envLevel())
	if envBool(EnvLogTimestamp, true) {
		logger = logger.With().Timestamp().Logger()
	}
	return &Concern{logger: logger}
}

// ConcernType registers zerolog concerns under the shared logging key.
func (c *Concern) ConcernType() reflect.Type {
	return logging.Type
}

// Logf implements logging.Concern.
func (c *Concern) Logf(level logging.Level, format string, args ...any) {
	switch level {
	case logging.Debug:
		c.logger.Debug().Msgf(format, args...)
	case logging.Warn:
		c.logger.Warn().Msgf(format, args...)
	case logging.Error:
		c.logger.Error().Msgf(format, args...)
	default:
		c.logger.Info().Msgf(format, args...)
	}
}

// Logger exposes the underlying zerolog logger for callers that want the
// structured API directly.
func (c *Concern) Logger() zerolog.Logger {
	return c.logger
}

func envLevel() zerolog.Level {
	switch strings.ToLower(os.Getenv(EnvLogLevel)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "info":
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}

func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func init() {
	csar.RegisterProvider(csar.ProviderFunc(func() ([]csar.Concern, error) {
		return []csar.Concern{NewConsole()}, nil
	}))
}
