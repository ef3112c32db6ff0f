package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/modcompat/internal/config"
	"github.com/specialistvlad/modcompat/internal/ctxlog"
	"github.com/specialistvlad/modcompat/internal/diag"
	"github.com/specialistvlad/modcompat/internal/guard"
	"github.com/specialistvlad/modcompat/internal/registry"
	"github.com/specialistvlad/modcompat/internal/symbol"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	universe *symbol.Universe
	guard    *guard.Guard
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger. The universe carries the
// types the host has made available for probing; a nil universe gets a
// fresh one with only builtins.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, universe *symbol.Universe) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if universe == nil {
		universe = symbol.NewUniverse()
	}

	model, err := loader.Load(ctx, appConfig.ProbePath, appConfig.ModulesPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded.", "modules", len(model.Modules), "probes", len(model.Probes))

	reg := registry.NewStatic(model.Modules...)

	var sink diag.Sink = diag.NewLogSink(logger)
	if appConfig.Quiet {
		sink = diag.Nop()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		universe: universe,
		guard:    guard.New(reg, symbol.NewResolver(universe), sink),
		model:    model,
	}
}

// Registry returns the application's module registry. Primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Guard returns the application's compatibility guard. Primarily for testing.
func (a *App) Guard() *guard.Guard {
	return a.guard
}
