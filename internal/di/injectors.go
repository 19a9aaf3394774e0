//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"nellis/internal"
	"nellis/internal/controllers"
	"nellis/internal/fixtures"
	"nellis/internal/providers"
	"nellis/internal/services"
	"nellis/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewClockProvider,

		fixtures.NewZstdCompressor,
		wire.Bind(new(fixtures.CompressorInterface), new(*fixtures.ZstdCompression)),
		fixtures.NewLoader,

		services.NewNotificationQueue,
		services.NewActivityFeed,
		services.NewCatalog,
		services.NewDashboardService,

		controllers.NewRenderer,
		controllers.NewConsolePrinter,
		controllers.NewDashboardController,
		internal.InitPages,
		controllers.NewConsoleController,
		internal.NewApp,
	)

	return nil, nil
}
