package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/levelorder/internal/hcl"
)

// DefaultValues is the sequence used when no input path is configured.
var DefaultValues = []int{1, 2, 3, 4, 5, 6, 7}

// Label prefixes every printed traversal line.
const Label = "Inorder traversal"

// SequenceLoader reads named sequences from the given paths.
type SequenceLoader interface {
	Load(ctx context.Context, paths ...string) ([]*hcl.Sequence, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader SequenceLoader
}

// NewApp is the constructor for the main application. Traversal lines are
// written to outW and logs to logW, each App owning its own logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader SequenceLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = hcl.NewLoader()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
