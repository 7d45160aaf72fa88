// Package logging provides structured logging for services and tools built
// on the shared kernel. Kernel packages themselves never log.
package logging

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environments accepted by New.
const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

// Config configures a Logger.
type Config struct {
	// ServiceName is attached to every entry.
	ServiceName string
	// Environment selects console (development) or JSON (production) output.
	Environment string
	// MinLevel is the minimum level written.
	MinLevel Level
	// Output receives log entries. Defaults to stderr.
	Output io.Writer
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ServiceName: "unknown",
		Environment: ProductionEnvironment,
		MinLevel:    LevelInfo,
		Output:      os.Stderr,
	}
}

// Logger writes structured log entries.
type Logger struct {
	zl *zap.Logger
}

// New creates a Logger from config.
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.ServiceName == "" {
		config.ServiceName = "unknown"
	}

	var encoder zapcore.Encoder
	if config.Environment == DevelopmentEnvironment {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.MessageKey = "message"
		encoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(config.Output), config.MinLevel.zapLevel())
	return &Logger{zl: zap.New(core).With(zap.String("service", config.ServiceName))}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// With returns a Logger that adds fields to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.zl.Debug(msg, fields...) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.zl.Info(msg, fields...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.zl.Warn(msg, fields...) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.zl.Error(msg, fields...) }

// Sync flushes buffered entries.
func (l *Logger) Sync() error { return l.zl.Sync() }

type key struct{}

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// FromContext returns the Logger in ctx, or a no-op Logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(key{}).(*Logger); ok && l != nil {
		return l
	}
	return Nop()
}
