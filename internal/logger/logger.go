package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sbilibin2017/gw-image-vault/internal/correlation"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Option tweaks the zap configuration used by Initialize.
type Option func(cfg *zap.Config)

// WithDevelopment switches to the human-readable console encoder with stack traces on warnings.
func WithDevelopment() Option {
	return func(cfg *zap.Config) {
		dev := zap.NewDevelopmentConfig()
		dev.Level = cfg.Level
		*cfg = dev
	}
}

// WithInitialFields attaches constant fields, e.g. service name and version, to every entry.
func WithInitialFields(fields map[string]any) Option {
	return func(cfg *zap.Config) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = make(map[string]any, len(fields))
		}
		for k, v := range fields {
			cfg.InitialFields[k] = v
		}
	}
}

// Initialize sets up the global logger with the given log level.
func Initialize(level string, opts ...Option) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	for _, opt := range opts {
		opt(&cfg)
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// FromContext returns the global logger annotated with the request's correlation id.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if id := correlation.FromContext(ctx); id != "" {
		return Log.With("correlation_id", id)
	}
	return Log
}
