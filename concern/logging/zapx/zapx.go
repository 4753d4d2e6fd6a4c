// Package zapx backs the logging concern with zap using ECS-compatible
// encoding, for processes that ship logs to an Elastic stack. Importing the
// package registers a provider that installs the development logger as the
// process-wide default.
package zapx

import (
	"reflect"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"

	"github.com/globalmentor/csar"
	"github.com/globalmentor/csar/concern/logging"
)

// Concern adapts a zap logger to the logging concern contract.
type Concern struct {
	base    *zap.Logger
	sugared *zap.SugaredLogger
}

// New wraps an existing zap logger.
func New(logger *zap.Logger) *Concern {
	return &Concern{base: logger, sugared: logger.Sugar()}
}

// NewDevelopment builds a development-config logger with an ECS-compatible
// encoder.
func NewDevelopment() (*Concern, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig = ecszap.ECSCompatibleEncoderConfig(config.EncoderConfig)
	logger, err := config.Build(ecszap.WrapCoreOption())
	if err != nil {
		return nil, err
	}
	return New(logger), nil
}

// ConcernType registers zap concerns under the shared logging key.
func (c *Concern) ConcernType() reflect.Type {
	return logging.Type
}

// Logf implements logging.Concern.
func (c *Concern) Logf(level logging.Level, format string, args ...any) {
	switch level {
	case logging.Debug:
		c.sugared.Debugf(format, args...)
	case logging.Warn:
		c.sugared.Warnf(format, args...)
	case logging.Error:
		c.sugared.Errorf(format, args...)
	default:
		c.sugared.Infof(format, args...)
	}
}

// Logger exposes the underlying zap logger for callers that want the
// structured API directly.
func (c *Concern) Logger() *zap.Logger {
	return c.base
}

// Sync flushes buffered log entries.
func (c *Concern) Sync() error {
	return c.base.Sync()
}

func init() {
	csar.RegisterProvider(csar.ProviderFunc(func() ([]csar.Concern, error) {
		concern, err := NewDevelopment()
		if err != nil {
			return nil, err
		}
		return []csar.Concern{concern}, nil
	}))
}
