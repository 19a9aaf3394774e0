package internal

import (
	"nellis/internal/controllers"
	"nellis/internal/providers"
	"nellis/internal/services"
)

// InitPages registers one console page per dashboard collection, in the
// order the dashboard navigation shows them.
func InitPages(catalog *services.Catalog, renderer *controllers.Renderer, queue *services.NotificationQueue, logger providers.Logger) providers.PageProviderInterface {
	pages := providers.NewPageProvider()

	pages.Register(controllers.NewPageController(catalog.Inventory, renderer, queue, logger).Page())
	pages.Register(controllers.NewPageController(catalog.Businesses, renderer, queue, logger).Page())
	pages.Register(controllers.NewPageController(catalog.Bookings, renderer, queue, logger).Page())
	pages.Register(controllers.NewPageController(catalog.Contacts, renderer, queue, logger).Page())
	pages.Register(controllers.NewPageController(catalog.BlogPosts, renderer, queue, logger).Page())
	pages.Register(controllers.NewPageController(catalog.Offers, renderer, queue, logger).Page())
	pages.Register(controllers.NewPageController(catalog.Specials, renderer, queue, logger).Page())
	return pages
}
