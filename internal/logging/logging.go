package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/itemdeck/internal/config"
)

// New builds the process logger. The TUI owns the terminal, so interactive
// runs only log when a log file is configured; other commands fall back to stderr.
func New(cfg config.Config, verbose, interactive bool) (*zap.Logger, error) {
	out := cfg.LogFile
	if out == "" {
		if interactive {
			return zap.NewNop(), nil
		}
		out = "stderr"
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
