// Package logging provides the structured logger used across omniplan,
// modeled on go.viam.com/rdk/logging: a small Level-gated interface backed
// by zap, with per-component subloggers and a deterministic test logger.
package logging

import (
	"fmt"
	"os"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Level is a logging severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	// DEBUG is the most verbose level.
	DEBUG Level = iota
	// INFO is the default level for production loggers.
	INFO
	// WARN indicates a recoverable but noteworthy condition.
	WARN
	// ERROR indicates an operation failed.
	ERROR
)

func (l Level) asZap() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger is the interface used by every omniplan component that logs.
// It mirrors the subset of go.viam.com/rdk/logging.Logger that a
// single-process library needs: leveled Printf-style logging, leveled
// structured (key/value) logging, and named subloggers.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	Sublogger(name string) Logger
	Sync() error
}

type impl struct {
	name string
	core *zap.SugaredLogger
}

// NewLogger returns a Logger that writes Info+ logs to stdout.
func NewLogger(name string) Logger {
	return newImpl(name, NewProductionConfig())
}

// NewDebugLogger returns a Logger that writes Debug+ logs to stdout.
func NewDebugLogger(name string) Logger {
	cfg := NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	return newImpl(name, cfg)
}

// NewTestLogger returns a Logger suitable for use from a *testing.T, writing
// Debug+ logs through t.Log so output is attributed to the right subtest.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also returns an in-memory
// observer of every emitted entry, for assertions on log content.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observerCore, observedLogs := observer.New(zapcore.DebugLevel)
	zl := zaptest.NewLogger(tb, zaptest.Level(zapcore.DebugLevel), zaptest.WrapOptions(
		zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, observerCore)
		}),
	))
	return &impl{name: "", core: zl.Sugar()}, observedLogs
}

// NewProductionConfig returns the zap.Config used by NewLogger/NewDebugLogger:
// colorized console encoding, no stacktraces, UTC-friendly ISO8601 timestamps.
func NewProductionConfig() zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

func newImpl(name string, cfg zap.Config) *impl {
	zl, err := cfg.Build()
	if err != nil {
		// Config above is a constant, known-good shape; a build failure here
		// means the process environment (e.g. stdout) is broken beyond repair.
		fmt.Fprintln(os.Stderr, err)
		zl = zap.NewNop()
	}
	return &impl{name: name, core: zl.Sugar().Named(name)}
}

func (l *impl) Debugf(template string, args ...interface{}) { l.core.Debugf(template, args...) }
func (l *impl) Infof(template string, args ...interface{})  { l.core.Infof(template, args...) }
func (l *impl) Warnf(template string, args ...interface{})  { l.core.Warnf(template, args...) }
func (l *impl) Errorf(template string, args ...interface{}) { l.core.Errorf(template, args...) }

func (l *impl) Debugw(msg string, keysAndValues ...interface{}) { l.core.Debugw(msg, keysAndValues...) }
func (l *impl) Infow(msg string, keysAndValues ...interface{})  { l.core.Infow(msg, keysAndValues...) }
func (l *impl) Warnw(msg string, keysAndValues ...interface{})  { l.core.Warnw(msg, keysAndValues...) }

func (l *impl) Sublogger(name string) Logger {
	newName := name
	if l.name != "" {
		newName = l.name + "." + name
	}
	return &impl{name: newName, core: l.core.Desugar().Named(name).Sugar()}
}

func (l *impl) Sync() error {
	return multierr.Combine(l.core.Sync())
}
