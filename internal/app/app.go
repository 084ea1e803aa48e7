package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/contractforge/internal/catalog"
	"github.com/vk/contractforge/internal/ctxlog"
	"github.com/vk/contractforge/internal/discovery"
	"github.com/vk/contractforge/internal/hclpack"
	"github.com/vk/contractforge/internal/lifecycle"
	"github.com/vk/contractforge/internal/loader"
	"github.com/vk/contractforge/internal/plugins"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	registry   *plugins.Registry
	store      *loader.Store
	catalog    *catalog.Memory
	controller *lifecycle.Controller
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry and
// store. An unreadable pack is a fatal startup error.
func NewApp(outW io.Writer, appConfig *Config, modules ...discovery.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	source, err := hclpack.LoadDir(ctx, appConfig.PackPath)
	if err != nil {
		// A failure to read the pack is a fatal startup error; per-entry
		// fault tolerance only starts once entries exist.
		panic(fmt.Errorf("failed to load contract pack: %w", err))
	}
	logger.Debug("Contract pack parsed into config entries.")

	if len(modules) == 0 {
		modules = coreModules
	}

	reg := plugins.New()
	store := loader.NewStore()
	cat := catalog.NewMemory(appConfig.Builtins...)

	controller := lifecycle.New(lifecycle.Config{
		Source:   source,
		Modules:  modules,
		Registry: reg,
		Store:    store,
		Catalog:  cat,
	})
	logger.Debug("Lifecycle controller created.", "builtin_types", len(appConfig.Builtins))

	return &App{
		outW:       outW,
		logger:     logger,
		registry:   reg,
		store:      store,
		catalog:    cat,
		controller: controller,
	}
}

// Registry returns the application's plugin registry. Primarily for testing.
func (a *App) Registry() *plugins.Registry { return a.registry }

// Store returns the loaded contract-type store. Primarily for testing.
func (a *App) Store() *loader.Store { return a.store }

// Catalog returns the dry-run live catalog. Primarily for testing.
func (a *App) Catalog() *catalog.Memory { return a.catalog }

// Controller returns the lifecycle controller. Primarily for testing.
func (a *App) Controller() *lifecycle.Controller { return a.controller }
