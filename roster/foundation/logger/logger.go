// Package logger provides support for initializing the log system.
package logger

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceIDFn represents a function that can return the trace id from
// the specified context.
type TraceIDFn func(ctx context.Context) string

// Level represents different logging levels.
type Level int8

// A set of possible logging levels.
const (
	LevelDebug = Level(zapcore.DebugLevel)
	LevelInfo  = Level(zapcore.InfoLevel)
	LevelWarn  = Level(zapcore.WarnLevel)
	LevelError = Level(zapcore.ErrorLevel)
)

// ParseLevel converts a level name into a Level. Unknown names map to info.
func ParseLevel(name string) Level {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return LevelInfo
	}

	return Level(lvl)
}

// Logger represents a logger for logging information.
type Logger struct {
	sugar     *zap.SugaredLogger
	traceIDFn TraceIDFn
}

// New constructs a new log for application use.
func New(w io.Writer, minLevel Level, serviceName string, traceIDFn TraceIDFn) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.Level(minLevel)),
	)

	log := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).
		With(zap.String("service", serviceName))

	return &Logger{
		sugar:     log.Sugar(),
		traceIDFn: traceIDFn,
	}
}

// NewNop returns a logger that discards everything. Useful for tests.
func NewNop() *Logger {
	return &Logger{
		sugar: zap.NewNop().Sugar(),
	}
}

// Debug logs at LevelDebug with the given context.
func (log *Logger) Debug(ctx context.Context, msg string, args ...any) {
	log.write(ctx, LevelDebug, msg, args...)
}

// Info logs at LevelInfo with the given context.
func (log *Logger) Info(ctx context.Context, msg string, args ...any) {
	log.write(ctx, LevelInfo, msg, args...)
}

// Warn logs at LevelWarn with the given context.
func (log *Logger) Warn(ctx context.Context, msg string, args ...any) {
	log.write(ctx, LevelWarn, msg, args...)
}

// Error logs at LevelError with the given context.
func (log *Logger) Error(ctx context.Context, msg string, args ...any) {
	log.write(ctx, LevelError, msg, args...)
}

// BuildInfo logs information stored inside the Go binary.
func (log *Logger) BuildInfo(ctx context.Context) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var values []any
	for _, s := range info.Settings {
		key := s.Key
		if s.Value == "" {
			continue
		}
		values = append(values, key, s.Value)
	}

	values = append(values, "goversion", info.GoVersion)
	values = append(values, "modversion", info.Main.Version)

	log.write(ctx, LevelInfo, "build info", values...)
}

// Sync flushes any buffered log entries.
func (log *Logger) Sync() error {
	if err := log.sugar.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	return nil
}

func (log *Logger) write(ctx context.Context, level Level, msg string, args ...any) {
	if log.traceIDFn != nil {
		args = append(args, "trace_id", log.traceIDFn(ctx))
	}

	switch level {
	case LevelDebug:
		log.sugar.Debugw(msg, args...)
	case LevelWarn:
		log.sugar.Warnw(msg, args...)
	case LevelError:
		log.sugar.Errorw(msg, args...)
	default:
		log.sugar.Infow(msg, args...)
	}
}
