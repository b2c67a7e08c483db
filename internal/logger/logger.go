// Package logger builds the zap loggers used by the mapping generator.
//
// There is no global instance: commands build one with New and pass it to the
// components that log.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mapping-generator/internal/errors"
)

// ParseLevel converts a level name into a zap level.
// Empty input means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug", "trace":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, errors.WithHint(
			errors.Wrapf(errors.ErrConfig, "unknown log level %q", s),
			"use one of debug, info, warn, error",
		)
	}
}

// New returns a sugared logger at the given level. jsonOutput selects the
// production JSON encoder; otherwise a compact console encoder writes to stderr
// so generated output on stdout stays clean.
func New(level string, jsonOutput bool) (*zap.SugaredLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)

		zapLogger, err := config.Build()
		if err != nil {
			return nil, errors.Wrap(err, "building json logger")
		}

		return zapLogger.Sugar(), nil
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)

	return zap.New(core).Sugar(), nil
}

// Nop returns a logger that discards everything. Used by tests and as the
// fallback when a component is built without one.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return Nop()
	}

	return l
}
