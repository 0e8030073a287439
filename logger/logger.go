// Package logger provides structured logging for brandpipe, backed by zap.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface is the logging interface used throughout the pipeline.
// Fields are key-value pairs, e.g. log.Info("fetched", "url", u, "status", s).
type Interface interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
	With(fields ...any) Interface
}

// Logger implements Interface on top of a zap.SugaredLogger.
type Logger struct {
	sugar *zap.SugaredLogger
}

var logLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// New creates a console logger at the given level ("debug", "info",
// "warn", "error"). Unknown levels default to info.
func New(level string) (Interface, error) {
	lvl, ok := logLevels[level]
	if !ok {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Interface {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func (l *Logger) Debug(msg string, fields ...any) { l.sugar.Debugw(msg, fields...) }
func (l *Logger) Info(msg string, fields ...any)  { l.sugar.Infow(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...any)  { l.sugar.Warnw(msg, fields...) }
func (l *Logger) Error(msg string, fields ...any) { l.sugar.Errorw(msg, fields...) }

// With returns a child logger with the given fields attached.
func (l *Logger) With(fields ...any) Interface {
	return &Logger{sugar: l.sugar.With(fields...)}
}
