// Package logging wraps a zap sugared logger for bog.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper over zap.SugaredLogger taking key/value pairs.
type Logger struct {
	z *zap.SugaredLogger
}

// LoggerConfig selects the running environment ("development" or
// "production"), an optional extra file to log to, and whether error logs
// carry stack traces.
type LoggerConfig struct {
	EnableStacktrace bool   `toml:"enable_stacktrace,omitempty"`
	Environment      string `toml:"env"`
	Path             string `toml:"path,omitempty"`
}

// DefaultLoggerConfig logs info and above to stderr.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Environment: "production"}
}

// NewLogger builds a console logger writing to stderr and conf.Path.
// Development logs debug and above, production info and above.
func NewLogger(conf *LoggerConfig) (*Logger, error) {
	if conf == nil {
		conf = DefaultLoggerConfig()
	}
	level := zap.NewAtomicLevel()
	switch {
	case strings.EqualFold("development", conf.Environment):
		level.SetLevel(zap.DebugLevel)
	case strings.EqualFold("production", conf.Environment), conf.Environment == "":
		level.SetLevel(zap.InfoLevel)
	default:
		return nil, fmt.Errorf("logger env must be development or production, got %q", conf.Environment)
	}

	outputs := []string{"stderr"}
	if conf.Path != "" {
		outputs = append(outputs, conf.Path)
	}

	zc := &zap.Config{
		Level:             level,
		Encoding:          "console",
		DisableStacktrace: !conf.EnableStacktrace,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			StacktraceKey:  "stack",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}
	z, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z.Sugar()}, nil
}

// New wraps an existing zap logger.
func New(z *zap.Logger) *Logger { return &Logger{z: z.Sugar()} }

// Nop returns a logger that discards everything.
func Nop() *Logger { return New(zap.NewNop()) }

// Named returns a child logger with the given name segment.
func (l *Logger) Named(name string) *Logger { return &Logger{z: l.z.Named(name)} }

func (l *Logger) Debug(msg string, keysAndValues ...any) { l.z.Debugw(msg, keysAndValues...) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.z.Infow(msg, keysAndValues...) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.z.Warnw(msg, keysAndValues...) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.z.Errorw(msg, keysAndValues...) }

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func (l *Logger) Sync() { _ = l.z.Sync() }
