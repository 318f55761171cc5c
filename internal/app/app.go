package app

import (
	"io"
	"log/slog"

	"github.com/vk/bulldag/internal/hclgraph"
)

// App encapsulates the CLI's dependencies, configuration and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader *hclgraph.Loader
	config *Config
}

// NewApp constructs the application with its own isolated logger. Program
// output (orders, traces) goes to outW; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		loader: hclgraph.NewLoader(),
		config: cfg,
	}
}
