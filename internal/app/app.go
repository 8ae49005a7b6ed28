package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gridnodes/internal/ctxlog"
	"github.com/vk/gridnodes/internal/flow"
	"github.com/vk/gridnodes/internal/node"
	"github.com/vk/gridnodes/internal/registry"
	"github.com/vk/gridnodes/internal/runner"
	"github.com/vk/gridnodes/internal/value"
	"github.com/vk/gridnodes/internal/varstore"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp builds an App whose logs go to logW. Without modules the full
// catalog is registered.
func NewApp(logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New(modulesOrDefault(modules)...)
	logger.Debug("Node modules registered.", "nodes", reg.Len())

	return &App{logger: logger, registry: reg, config: cfg}
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// NewRunner creates a runner over a fresh store seeded with vars.
func (a *App) NewRunner(vars map[string]value.Value) *runner.Runner {
	return runner.New(a.registry, varstore.New(vars), nil, runner.WithWorkers(a.config.WorkerCount))
}

// Exec invokes a single node with the given inputs and initial store.
func (a *App) Exec(ctx context.Context, nodeType string, in node.Inputs, vars map[string]value.Value) (runner.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.NewRunner(vars).Invoke(ctx, nodeType, in)
}

// RunFlow loads the flow files under paths and runs them.
func (a *App) RunFlow(ctx context.Context, paths ...string) (*runner.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	f, err := flow.Load(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load flow: %w", err)
	}
	rep, err := a.NewRunner(nil).RunFlow(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("flow run failed: %w", err)
	}
	return rep, nil
}
