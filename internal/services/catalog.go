package services

import (
	"fmt"

	"nellis/internal/models"
	"nellis/internal/providers"
)

// Catalog owns one controller per dashboard page.
type Catalog struct {
	Businesses *Controller[models.Business]
	BlogPosts  *Controller[models.BlogPost]
	Contacts   *Controller[models.ContactSubmission]
	Inventory  *Controller[models.Vehicle]
	Bookings   *Controller[models.ServiceBooking]
	Offers     *Controller[models.SpecialOffer]
	Specials   *Controller[models.WeeklySpecial]
}

func newPageController[T models.Record](schema *EntitySchema[T], base Deps, feed *ActivityFeed) *Controller[T] {
	deps := base
	deps.Notifier = Notifiers{base.Notifier, feed.For(schema.Name)}
	return NewController(schema, models.NewStore[T](), deps)
}

func NewCatalog(
	queue *NotificationQueue,
	feed *ActivityFeed,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	clock providers.Clock,
) *Catalog {
	base := Deps{Notifier: queue, Logger: logger, Metrics: metrics, Clock: clock}
	return &Catalog{
		Businesses: newPageController(BusinessSchema(), base, feed),
		BlogPosts:  newPageController(BlogPostSchema(), base, feed),
		Contacts:   newPageController(ContactSchema(), base, feed),
		Inventory:  newPageController(VehicleSchema(), base, feed),
		Bookings:   newPageController(BookingSchema(), base, feed),
		Offers:     newPageController(OfferSchema(), base, feed),
		Specials:   newPageController(WeeklySpecialSchema(), base, feed),
	}
}

// Load seeds every page from storage. Seeding stops at the first invalid
// collection.
func (c *Catalog) Load(storage *models.Storage) error {
	if storage == nil {
		return fmt.Errorf("load catalog: nil storage")
	}
	steps := []func() error{
		func() error { return c.Businesses.Seed(storage.Businesses) },
		func() error { return c.BlogPosts.Seed(storage.BlogPosts) },
		func() error { return c.Contacts.Seed(storage.Contacts) },
		func() error { return c.Inventory.Seed(storage.Inventory) },
		func() error { return c.Bookings.Seed(storage.Bookings) },
		func() error { return c.Offers.Seed(storage.Offers) },
		func() error { return c.Specials.Seed(storage.Specials) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
	}
	return nil
}

// Snapshot copies every collection back into a Storage value.
func (c *Catalog) Snapshot() *models.Storage {
	return &models.Storage{
		Businesses: c.Businesses.List(),
		BlogPosts:  c.BlogPosts.List(),
		Contacts:   c.Contacts.List(),
		Inventory:  c.Inventory.List(),
		Bookings:   c.Bookings.List(),
		Offers:     c.Offers.List(),
		Specials:   c.Specials.List(),
	}
}
