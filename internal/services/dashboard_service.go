package services

import (
	"strings"

	"nellis/internal/models"
	"nellis/internal/providers"
)

type DashboardStats struct {
	TotalCars       int `json:"totalCars"`
	Dealerships     int `json:"dealerships"`
	ServiceBookings int `json:"serviceBookings"`
	Inquiries       int `json:"inquiries"`
	BlogPosts       int `json:"blogPosts"`
	WeeklySpecials  int `json:"weeklySpecials"`
	ActiveOffers    int `json:"activeOffers"`
	PendingBookings int `json:"pendingBookings"`
	NewContacts     int `json:"newContacts"`
}

type StatCard struct {
	Label string
	Value int
}

func (s DashboardStats) Cards() []StatCard {
	return []StatCard{
		{Label: "Total Cars", Value: s.TotalCars},
		{Label: "Dealerships", Value: s.Dealerships},
		{Label: "Service Bookings", Value: s.ServiceBookings},
		{Label: "Inquiries", Value: s.Inquiries},
		{Label: "Blog Posts", Value: s.BlogPosts},
		{Label: "Weekly Specials", Value: s.WeeklySpecials},
		{Label: "Active Offers", Value: s.ActiveOffers},
		{Label: "Pending Bookings", Value: s.PendingBookings},
		{Label: "New Contacts", Value: s.NewContacts},
	}
}

type DashboardServiceInterface interface {
	Stats() DashboardStats
	Recent() []Activity
}

type DashboardService struct {
	catalog *Catalog
	feed    *ActivityFeed
	clock   providers.Clock
}

// Stats is recomputed from the live collections on every call.
func (d *DashboardService) Stats() DashboardStats {
	now := d.clock.Now()

	dealers := make(map[string]struct{})
	for _, v := range d.catalog.Inventory.List() {
		if name := strings.TrimSpace(v.Dealer); name != "" {
			dealers[strings.ToLower(name)] = struct{}{}
		}
	}

	return DashboardStats{
		TotalCars:       d.catalog.Inventory.Len(),
		Dealerships:     len(dealers),
		ServiceBookings: d.catalog.Bookings.Len(),
		Inquiries:       d.catalog.Contacts.Len(),
		BlogPosts:       d.catalog.BlogPosts.Len(),
		WeeklySpecials:  d.catalog.Specials.Len(),
		ActiveOffers: len(d.catalog.Offers.Filter(func(o models.SpecialOffer) bool {
			return o.IsActive(now)
		})),
		PendingBookings: len(d.catalog.Bookings.Filter(func(b models.ServiceBooking) bool {
			return b.Status == models.BookingPending
		})),
		NewContacts: len(d.catalog.Contacts.Filter(func(c models.ContactSubmission) bool {
			return c.Status == models.ContactNew
		})),
	}
}

func (d *DashboardService) Recent() []Activity {
	return d.feed.Recent()
}

func NewDashboardService(catalog *Catalog, feed *ActivityFeed, clock providers.Clock) DashboardServiceInterface {
	return &DashboardService{catalog: catalog, feed: feed, clock: clock}
}
