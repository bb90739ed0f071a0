// Package logging builds the zap logger used by the CLI. Diagnostics go to
// stderr so that rendered shortcuts on stdout stay clean.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps normal runs quiet.
const DefaultLevel = "warn"

// ParseLevel maps a level name to a zap level. An empty name means DefaultLevel.
func ParseLevel(name string) (zap.AtomicLevel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultLevel
	}
	level, err := zap.ParseAtomicLevel(strings.ToLower(name))
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("parsing log level %q: %w", name, err)
	}
	return level, nil
}

// New returns a console logger writing to stderr at the given level.
func New(levelName string) (*zap.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.Encoding = "console"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfig.DisableStacktrace = true
	loggerConfig.Sampling = nil
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
