package internal

import (
	"context"
	"fmt"
	"io"

	"nellis/internal/controllers"
	"nellis/internal/fixtures"
	"nellis/internal/providers"
	"nellis/internal/services"
	"nellis/internal/structures"
)

type App struct {
	conf       *structures.Config
	logger     providers.Logger
	loader     *fixtures.Loader
	compressor *fixtures.ZstdCompression
	catalog    *services.Catalog
	console    *controllers.ConsoleController
}

// NewApp seeds the catalog from the configured fixtures and returns an app
// ready to serve console commands.
func NewApp(
	conf *structures.Config,
	logger providers.Logger,
	loader *fixtures.Loader,
	compressor *fixtures.ZstdCompression,
	catalog *services.Catalog,
	console *controllers.ConsoleController,
) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	storage, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	if err := catalog.Load(storage); err != nil {
		return nil, err
	}

	return &App{
		conf:       conf,
		logger:     logger,
		loader:     loader,
		compressor: compressor,
		catalog:    catalog,
		console:    console,
	}, nil
}

// Run serves the interactive console until quit, EOF or ctx is cancelled.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	a.logger.Infof(providers.TypeApp, "Console started")
	err := a.console.Run(ctx, in, out)
	a.logger.Infof(providers.TypeApp, "Console stopped")
	return err
}

// Exec runs a single console command. Deletes are declined since there is
// nobody to confirm them.
func (a *App) Exec(out io.Writer, args ...string) error {
	_, err := a.console.ExecuteArgs(out, args, nil)
	return err
}

func (a *App) Pack(src, dst string) error {
	return a.loader.Pack(src, dst)
}

func (a *App) Close() {
	a.compressor.Close()
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	a.logger.Close()
}
