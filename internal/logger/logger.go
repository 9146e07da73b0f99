// SPDX-License-Identifier: MIT

// Package logger builds the zap logger used by the CLI. Library packages
// never log; they return errors and reports instead.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to w at level ("debug", "info", "warn", "error").
// verbose switches from the production JSON encoder to the development
// console encoder and lowers the level to debug.
func New(w io.Writer, level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: level %q: %w", level, err)
	}

	var enc zapcore.Encoder
	if verbose {
		lvl.SetLevel(zapcore.DebugLevel)
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	return zap.New(core), nil
}
