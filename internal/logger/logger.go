// Package logger builds the zap logger shared by the galois command.
//
// Console output is meant for people and goes to stderr so that command
// results on stdout stay machine-readable; JSON output uses zap's
// production encoder.
package logger

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at the named level ("debug", "info", "warn", "error").
func New(level string, jsonOutput bool) (*zap.Logger, error) {
	return NewWithWriter(os.Stderr, level, jsonOutput)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, level string, jsonOutput bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "logger: level %q", level),
			"use one of debug, info, warn, error")
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// Sync flushes l, ignoring the error stderr returns on some platforms.
func Sync(l *zap.Logger) {
	_ = l.Sync()
}
