// Package logging builds the process-wide zap logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds a logger for the given mode ("dev" enables human-readable
// output and debug level; anything else is production JSON at info).
// Output goes to stderr so it never interleaves with interactive
// prompts; set PATHWISE_LOG to redirect it to a file.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	default:
		cfg = zap.NewProductionConfig()
	}

	cfg.OutputPaths = []string{"stderr"}
	if path := os.Getenv("PATHWISE_LOG"); path != "" {
		cfg.OutputPaths = []string{path}
	}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	return cfg.Build()
}

// FromEnv builds a logger using the PATHWISE_ENV mode.
func FromEnv() (*zap.Logger, error) {
	return New(os.Getenv("PATHWISE_ENV"))
}
