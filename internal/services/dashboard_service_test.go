package services

import (
	"testing"

	"nellis/internal/models"
	"nellis/internal/structures"
	"nellis/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (*Catalog, *ActivityFeed, *NotificationQueue, *testutil.FixedClock) {
	t.Helper()
	clock := testutil.NewFixedClock(testNow)
	queue := NewNotificationQueue()
	feed := NewActivityFeed(&structures.Config{Activity: structures.ActivityConfig{Size: 10}}, clock)
	catalog := NewCatalog(queue, feed, &testutil.MockLogger{}, &testutil.MockMetrics{}, clock)

	require.NoError(t, catalog.Load(&models.Storage{
		Businesses: sampleBusinesses(),
		Bookings:   sampleBookings(),
		Inventory: []models.Vehicle{
			{ID: 1, Brand: "Honda", Model: "Civic", Year: 2019, Mileage: 30000, Price: 18000, Dealer: "Valley Honda",
				Condition: "Good", Transmission: "CVT", FuelType: "Gasoline"},
			{ID: 2, Brand: "Ford", Model: "F-150", Year: 2018, Mileage: 60000, Price: 24000, Dealer: "valley honda ",
				Condition: "Fair", Transmission: "Automatic", FuelType: "Gasoline"},
			{ID: 3, Brand: "Tesla", Model: "Model 3", Year: 2021, Mileage: 12000, Price: 31000, Dealer: "Desert EV",
				Condition: "Excellent", Transmission: "Automatic", FuelType: "Electric"},
			{ID: 4, Brand: "Kia", Model: "Soul", Year: 2016, Mileage: 80000, Price: 9000,
				Condition: "Fair", Transmission: "Manual", FuelType: "Gasoline"},
		},
		Contacts: []models.ContactSubmission{
			{ID: 1, Name: "Ann", Email: "ann@example.com", Subject: "Hi", Message: "Hello", Status: models.ContactNew},
			{ID: 2, Name: "Bo", Email: "bo@example.com", Subject: "Re", Message: "Thanks", Status: models.ContactResponded},
		},
		Offers: []models.SpecialOffer{
			{ID: 1, Title: "Summer", Description: "10% off", Dealership: "Valley Honda", ValidUntil: "2024-07-01"},
			{ID: 2, Title: "Spring", Description: "Free wash", Dealership: "Valley Honda", ValidUntil: "2024-05-01"},
		},
		Specials: []models.WeeklySpecial{
			{ID: 1, Title: "Deal", Dealership: "Desert EV", VideoURL: "https://video.example.com/1", Description: "EV week", Date: "2024-05-27"},
		},
	}))
	return catalog, feed, queue, clock
}

func TestDashboardService_Stats(t *testing.T) {
	catalog, feed, _, clock := newTestCatalog(t)
	ds := NewDashboardService(catalog, feed, clock)

	assert.Equal(t, DashboardStats{
		TotalCars:       4,
		Dealerships:     2,
		ServiceBookings: 3,
		Inquiries:       2,
		BlogPosts:       0,
		WeeklySpecials:  1,
		ActiveOffers:    1,
		PendingBookings: 1,
		NewContacts:     1,
	}, ds.Stats())
}

func TestDashboardService_StatsAreLive(t *testing.T) {
	catalog, feed, _, clock := newTestCatalog(t)
	ds := NewDashboardService(catalog, feed, clock)

	_, err := catalog.Bookings.SetField(1, "status", "Confirmed")
	require.NoError(t, err)
	_, err = catalog.BlogPosts.Create(Form{"title": "Hello", "content": "First post"})
	require.NoError(t, err)

	stats := ds.Stats()
	assert.Equal(t, 0, stats.PendingBookings)
	assert.Equal(t, 1, stats.BlogPosts)

	recent := ds.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, PageBlog, recent[0].Page)
	assert.Equal(t, "Booking confirmed successfully", recent[1].Message)
}

func TestCatalog_NotifiesQueueAndFeed(t *testing.T) {
	catalog, feed, queue, _ := newTestCatalog(t)

	_, err := catalog.Specials.Update(1, Form{"title": "EV Deal"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Special updated successfully"}, messages(queue))
	require.Len(t, feed.Recent(), 1)
	assert.Equal(t, PageSpecials, feed.Recent()[0].Page)
}

func TestCatalog_LoadRejectsDuplicateIDs(t *testing.T) {
	clock := testutil.NewFixedClock(testNow)
	feed := NewActivityFeed(&structures.Config{Activity: structures.ActivityConfig{Size: 1}}, clock)
	catalog := NewCatalog(NewNotificationQueue(), feed, &testutil.MockLogger{}, &testutil.MockMetrics{}, clock)

	err := catalog.Load(&models.Storage{Specials: []models.WeeklySpecial{{ID: 1}, {ID: 1}}})
	assert.ErrorContains(t, err, "duplicate id 1")
	assert.Error(t, catalog.Load(nil))
}

func TestCatalog_Snapshot(t *testing.T) {
	catalog, _, _, _ := newTestCatalog(t)

	snap := catalog.Snapshot()
	assert.Len(t, snap.Inventory, 4)
	assert.Equal(t, sampleBookings(), snap.Bookings)
}
