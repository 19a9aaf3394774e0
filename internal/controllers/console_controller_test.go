package controllers

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"nellis/internal/models"
	"nellis/internal/providers"
	"nellis/internal/services"
	"nellis/internal/structures"
	"nellis/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	console *ConsoleController
	catalog *services.Catalog
	queue   *services.NotificationQueue
	cache   *testutil.MockCache
	pages   providers.PageProviderInterface
}

func testConfig() *structures.Config {
	return &structures.Config{
		Console:  structures.ConsoleConfig{Prompt: "> "},
		Activity: structures.ActivityConfig{Size: 10},
	}
}

func newFixture(t *testing.T, conf *structures.Config) *fixture {
	t.Helper()
	clock := testutil.NewFixedClock(testNow)
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	queue := services.NewNotificationQueue()
	feed := services.NewActivityFeed(conf, clock)
	catalog := services.NewCatalog(queue, feed, logger, metrics, clock)
	require.NoError(t, catalog.Load(&models.Storage{
		Businesses: []models.Business{
			{ID: 1, Name: "Sparkle Car Wash", Type: "Car Wash", Address: "1 Main St", Phone: "555-0100",
				Email: "wash@example.com", Hours: "8-6", Services: []string{"Exterior", "Interior"}},
		},
		Bookings: []models.ServiceBooking{
			{ID: 1, CustomerName: "Ann Lee", Email: "ann@example.com", Phone: "555-1000", Service: "Oil Change",
				Vehicle: "2019 Civic", PreferredDate: "2024-06-10", Status: models.BookingPending},
		},
		Offers: []models.SpecialOffer{
			{ID: 1, Title: "Summer", Description: "10% off", Dealership: "Valley Honda", ValidUntil: "2024-07-01"},
		},
	}))

	cache := testutil.NewMockCache()
	renderer := NewRenderer(conf, cache, logger)
	printer := NewPrinter(false)
	pages := providers.NewPageProvider()
	pages.Register(NewPageController(catalog.Businesses, renderer, queue, logger).Page())
	pages.Register(NewPageController(catalog.Bookings, renderer, queue, logger).Page())
	pages.Register(NewPageController(catalog.Offers, renderer, queue, logger).Page())

	dashboard := NewDashboardController(services.NewDashboardService(catalog, feed, clock), renderer, printer)
	console := NewConsoleController(conf, pages, dashboard, queue, metrics, printer, logger)
	return &fixture{console: console, catalog: catalog, queue: queue, cache: cache, pages: pages}
}

func (f *fixture) exec(t *testing.T, line string) string {
	t.Helper()
	var out bytes.Buffer
	quit, err := f.console.Execute(&out, line, func(string) bool { return false })
	require.NoError(t, err)
	assert.False(t, quit)
	return out.String()
}

func TestTokenize(t *testing.T) {
	cases := map[string][]string{
		"":                              nil,
		"  list   inventory ":           {"list", "inventory"},
		`add blog title="Winter tires"`: {"add", "blog", "title=Winter tires"},
		`list offers 'free wash'`:       {"list", "offers", "free wash"},
		`edit blog 1 content=""`:        {"edit", "blog", "1", "content="},
		"stats\tbookings":               {"stats", "bookings"},
	}
	for line, want := range cases {
		got, err := tokenize(line)
		require.NoError(t, err, line)
		assert.Equal(t, want, got, line)
	}

	_, err := tokenize(`add blog title="oops`)
	assert.ErrorIs(t, err, errUnterminatedQuote)
}

func TestParseForm(t *testing.T) {
	form, err := parseForm([]string{"name=Quick Lube", "services=Oil", "services=Filters", "website="}, []string{"services"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":     "Quick Lube",
		"services": []string{"Oil", "Filters"},
		"website":  "",
	}, form)

	_, err = parseForm([]string{"justaword"}, nil)
	assert.Error(t, err)
}

func TestParseForm_RepeatedScalarFieldRejected(t *testing.T) {
	_, err := parseForm([]string{"name=a", "name=b"}, []string{"services"})
	assert.EqualError(t, err, "name given more than once")

	_, err = parseForm([]string{"name=a", "name=b"}, nil)
	assert.Error(t, err)
}

func TestConsole_RepeatedScalarFieldIsReported(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, `edit businesses 1 name=a name=b`)
	assert.Contains(t, out, "✗ name given more than once")

	rec, err := f.catalog.Businesses.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Sparkle Car Wash", rec.Name)

	out = f.exec(t, `edit businesses 1 services=Wash services=Wax`)
	assert.Contains(t, out, "✓ Business updated successfully")
	rec, err = f.catalog.Businesses.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wash", "Wax"}, rec.Services)
}

func TestConsole_SubmitBooking(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, `submit bookings customerName="Dee Ray" email=dee@example.com phone=555-1010 `+
		`service="Tire Rotation" vehicle="2018 Outback" preferredDate=2024-06-15 status=Completed`)

	assert.Contains(t, out, "✓ Service booking received")
	assert.Contains(t, out, "Dee Ray")
	require.Equal(t, 2, f.catalog.Bookings.Len())
	rec, err := f.catalog.Bookings.Get(2)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, rec.Status)

	out = f.exec(t, `add bookings customerName="Eve"`)
	assert.Contains(t, out, "✗ ")
	assert.Equal(t, 2, f.catalog.Bookings.Len())
}

func TestConsole_SubmitRejectedWithoutIntake(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, `submit businesses name=X`)
	assert.Contains(t, out, "✗ ")
	assert.Contains(t, out, "does not accept submissions")
	assert.Equal(t, 1, f.catalog.Businesses.Len())

	out = f.exec(t, "submit")
	assert.Contains(t, out, "usage: submit <page> field=value ...")
}

func TestConsole_ListAndSearch(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, "list businesses")
	assert.Contains(t, out, "Sparkle Car Wash")
	assert.Contains(t, out, "Exterior, Interior")
	assert.Contains(t, out, "1 record")

	out = f.exec(t, "list directory nothing-matches")
	assert.Contains(t, out, "0 records")
}

func TestConsole_AddPrintsRecordAndNotification(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, `add business name="Quick Lube" type="Oil Change" address="42 Oak Rd" phone=555-0199 `+
		`email=lube@example.com hours=7-7 services="Oil change, Filters"`)

	assert.Contains(t, out, "✓ Business added successfully")
	assert.Contains(t, out, "Quick Lube")
	assert.Equal(t, 2, f.catalog.Businesses.Len())
}

func TestConsole_ValidationFailureIsReported(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, `add businesses name="No Type"`)

	assert.Contains(t, out, "✗ ")
	assert.Equal(t, 1, f.catalog.Businesses.Len())
}

func TestConsole_StatusTransitions(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, "status bookings 1 Confirmed")
	assert.Contains(t, out, "✓ Booking confirmed successfully")

	out = f.exec(t, "status bookings 1 Pending")
	assert.Contains(t, out, "✗ ")
	assert.Contains(t, out, "cannot move from Confirmed to Pending")

	out = f.exec(t, "status businesses 1 Open")
	assert.Contains(t, out, "no status")
}

func TestConsole_DeleteAsksForConfirmation(t *testing.T) {
	f := newFixture(t, testConfig())
	var out bytes.Buffer

	err := f.console.Run(context.Background(), strings.NewReader("delete businesses 1\nn\ndelete businesses 1\ny\nquit\n"), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Are you sure you want to delete this business? [y/N]")
	assert.Contains(t, text, "Delete cancelled")
	assert.Contains(t, text, "✓ Business deleted successfully")
	assert.Equal(t, 0, f.catalog.Businesses.Len())
}

func TestConsole_DeleteMissingRecord(t *testing.T) {
	f := newFixture(t, testConfig())
	var out bytes.Buffer

	_, err := f.console.Execute(&out, "delete businesses 9", func(string) bool { return true })
	require.NoError(t, err)
	assert.Contains(t, out.String(), "business 9 not found")
}

func TestConsole_Stats(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, "stats bookings")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "Cancelled")

	out = f.exec(t, "stats offers isActive")
	assert.Contains(t, out, "true")

	out = f.exec(t, "stats offers")
	assert.Contains(t, out, "a field name is required")
}

func TestConsole_UnknownInput(t *testing.T) {
	f := newFixture(t, testConfig())

	assert.Contains(t, f.exec(t, "fly"), `unknown command "fly"`)
	assert.Contains(t, f.exec(t, "list garages"), `unknown page "garages"`)
	assert.Contains(t, f.exec(t, "show businesses abc"), `invalid id "abc"`)
	assert.Contains(t, f.exec(t, "show"), "usage: show <page> <id>")
	assert.Contains(t, f.exec(t, `list "open`), "unterminated quote")
}

func TestConsole_Pages(t *testing.T) {
	f := newFixture(t, testConfig())

	out := f.exec(t, "pages")
	assert.Contains(t, out, "businesses")
	assert.Contains(t, out, "Service & Parts")
}

func TestConsole_DashboardAndActivity(t *testing.T) {
	f := newFixture(t, testConfig())

	f.exec(t, "status bookings 1 Cancelled")
	out := f.exec(t, "dashboard")
	assert.Contains(t, out, "Service Bookings: 1")
	assert.Contains(t, out, "Pending Bookings: 0")
	assert.Contains(t, out, "Booking cancelled successfully")

	out = f.exec(t, "activity")
	assert.Contains(t, out, "bookings")
}

func TestConsole_RunStopsOnEOFAndCancel(t *testing.T) {
	f := newFixture(t, testConfig())

	var out bytes.Buffer
	require.NoError(t, f.console.Run(context.Background(), strings.NewReader("help\n"), &out))
	assert.Contains(t, out.String(), "Commands:")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out.Reset()
	require.NoError(t, f.console.Run(ctx, strings.NewReader("list businesses\n"), &out))
	assert.Empty(t, out.String())
}

func TestConsole_Metrics(t *testing.T) {
	f := newFixture(t, testConfig())
	assert.Contains(t, f.exec(t, "metrics"), "mock metrics")
}

func TestConsole_QuitReportsStop(t *testing.T) {
	f := newFixture(t, testConfig())
	var out bytes.Buffer

	quit, err := f.console.Execute(&out, "quit", nil)
	require.NoError(t, err)
	assert.True(t, quit)
}
