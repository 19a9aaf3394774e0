package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nellis/internal/models"
)

const (
	PageBusinesses = "businesses"
	PageBlog       = "blog"
	PageContacts   = "contacts"
	PageInventory  = "inventory"
	PageBookings   = "bookings"
	PageOffers     = "offers"
	PageSpecials   = "specials"
)

const FieldIsActive = "isActive"

func today(now time.Time) string { return now.Format(models.DateLayout) }

func crudMessages(noun, created string) Messages {
	lower := strings.ToLower(noun)
	return Messages{
		Created:       created,
		Updated:       noun + " updated successfully",
		Deleted:       noun + " deleted successfully",
		ConfirmDelete: fmt.Sprintf("Are you sure you want to delete this %s?", lower),
	}
}

func BusinessSchema() *EntitySchema[models.Business] {
	return &EntitySchema[models.Business]{
		Name:       PageBusinesses,
		Title:      "Auto Businesses",
		Noun:       "Business",
		Aliases:    []string{"business", "directory"},
		Searchable: []string{"name", "type", "address", "phone", "email", "services"},
		Columns: []Column{
			{Field: "id", Header: "ID"},
			{Field: "name", Header: "Business"},
			{Field: "type", Header: "Type"},
			{Field: "phone", Header: "Contact"},
			{Field: "services", Header: "Services"},
		},
		Required:   []string{"name", "type", "address", "phone", "email", "hours", "services"},
		ListFields: []string{"services"},
		Enums:      map[string][]string{"type": models.BusinessTypes},
		Formats:    map[string]string{"email": "email"},
		Editable:   true,
		Messages:   crudMessages("Business", "Business added successfully"),
	}
}

func BlogPostSchema() *EntitySchema[models.BlogPost] {
	return &EntitySchema[models.BlogPost]{
		Name:       PageBlog,
		Title:      "Community Blog",
		Noun:       "Post",
		Aliases:    []string{"posts", "post"},
		Searchable: []string{"title", "author", "content", "tags", "status"},
		Columns: []Column{
			{Field: "id", Header: "ID"},
			{Field: "title", Header: "Post"},
			{Field: "author", Header: "Author"},
			{Field: "publishDate", Header: "Publish Date"},
			{Field: "tags", Header: "Tags"},
			{Field: "status", Header: "Status"},
		},
		Required:   []string{"title", "content", "author"},
		ListFields: []string{"tags"},
		Enums:      map[string][]string{"status": models.EnumStrings(models.PostStatuses())},
		Formats:    map[string]string{"publishDate": "date"},
		Defaults: map[string]func(time.Time) string{
			"author":      func(time.Time) string { return "Admin" },
			"status":      func(time.Time) string { return string(models.PostPublished) },
			"publishDate": today,
		},
		Preserved:    []string{"publishDate"},
		StatusFields: []string{"status"},
		Editable:     true,
		Messages:     crudMessages("Post", "Post created successfully"),
	}
}

func ContactSchema() *EntitySchema[models.ContactSubmission] {
	messages := crudMessages("Submission", "")
	messages.Received = "New contact submission received"
	return &EntitySchema[models.ContactSubmission]{
		Name:       PageContacts,
		Title:      "Contact Submissions",
		Noun:       "Submission",
		Aliases:    []string{"contact", "inquiries", "submissions"},
		Searchable: []string{"name", "email", "subject", "message", "status"},
		Columns: []Column{
			{Field: "id", Header: "ID"},
			{Field: "name", Header: "Contact"},
			{Field: "email", Header: "Email"},
			{Field: "subject", Header: "Subject"},
			{Field: "submittedAt", Header: "Submitted"},
			{Field: "status", Header: "Status"},
		},
		Required: []string{"name", "email", "subject", "message"},
		Enums:    map[string][]string{"status": models.EnumStrings(models.ContactStatuses())},
		Formats:  map[string]string{"email": "email"},
		Intake: &Intake{
			Required: []string{"name", "email", "subject", "message"},
			Set: map[string]func(time.Time) string{
				"submittedAt": func(now time.Time) string { return now.UTC().Format(time.RFC3339) },
				"status":      func(time.Time) string { return string(models.ContactNew) },
			},
		},
		StatusFields: []string{"status"},
		Messages:     messages,
	}
}

func VehicleSchema() *EntitySchema[models.Vehicle] {
	return &EntitySchema[models.Vehicle]{
		Name:       PageInventory,
		Title:      "Inventory",
		Noun:       "Vehicle",
		Aliases:    []string{"vehicles", "cars"},
		Searchable: []string{"brand", "model", "year", "dealer", "condition", "transmission", "fuelType"},
		Columns: []Column{
			{Field: "id", Header: "ID"},
			{Field: "brand", Header: "Brand"},
			{Field: "model", Header: "Model"},
			{Field: "year", Header: "Year"},
			{Field: "mileage", Header: "Mileage"},
			{Field: "price", Header: "Price"},
			{Field: "dealer", Header: "Dealer"},
			{Field: "transmission", Header: "Transmission"},
		},
		Required:   []string{"brand", "model", "year", "mileage", "price", "condition", "transmission", "fuelType"},
		ListFields: []string{"images"},
		Enums: map[string][]string{
			"condition":    models.VehicleConditions,
			"transmission": models.VehicleTransmissions,
			"fuelType":     models.VehicleFuelTypes,
		},
		Formats: map[string]string{
			"year":    "isIntString",
			"mileage": "isIntString",
			"price":   "isIntString",
		},
		Editable: true,
		Messages: crudMessages("Vehicle", "Vehicle added successfully"),
	}
}

// BookingTransitions is the lifecycle the service desk follows. Completed and
// Cancelled are terminal.
var BookingTransitions = Transitions{
	string(models.BookingPending):   {string(models.BookingConfirmed), string(models.BookingCancelled)},
	string(models.BookingConfirmed): {string(models.BookingCompleted)},
}

func BookingSchema() *EntitySchema[models.ServiceBooking] {
	messages := crudMessages("Booking", "")
	messages.Received = "Service booking received"
	messages.Status = func(value string) string {
		return fmt.Sprintf("Booking %s successfully", strings.ToLower(value))
	}
	return &EntitySchema[models.ServiceBooking]{
		Name:       PageBookings,
		Title:      "Service & Parts",
		Noun:       "Booking",
		Aliases:    []string{"service", "booking"},
		Searchable: []string{"customerName", "email", "phone", "service", "vehicle", "status"},
		Columns: []Column{
			{Field: "id", Header: "ID"},
			{Field: "customerName", Header: "Customer"},
			{Field: "vehicle", Header: "Vehicle"},
			{Field: "service", Header: "Service"},
			{Field: "preferredDate", Header: "Preferred Date"},
			{Field: "status", Header: "Status"},
		},
		Required: []string{"customerName", "email", "phone", "service", "vehicle", "preferredDate"},
		Enums:    map[string][]string{"status": models.EnumStrings(models.BookingStatuses())},
		Formats:  map[string]string{"email": "email", "preferredDate": "date"},
		Intake: &Intake{
			Required: []string{"customerName", "email", "phone", "service", "vehicle", "preferredDate"},
			Set: map[string]func(time.Time) string{
				"status": func(time.Time) string { return string(models.BookingPending) },
			},
		},
		StatusFields: []string{"status"},
		Transitions:  map[string]Transitions{"status": BookingTransitions},
		Messages:     messages,
	}
}

func OfferSchema() *EntitySchema[models.SpecialOffer] {
	return &EntitySchema[models.SpecialOffer]{
		Name:       PageOffers,
		Title:      "Special Offers",
		Noun:       "Offer",
		Aliases:    []string{"offer", "promotions"},
		Searchable: []string{"title", "description", "dealership", "terms"},
		Columns: []Column{
			{Field: "id", Header: "ID"},
			{Field: "title", Header: "Offer"},
			{Field: "dealership", Header: "Dealership"},
			{Field: "validUntil", Header: "Valid Until"},
			{Field: FieldIsActive, Header: "Status"},
		},
		Required: []string{"title", "description", "dealership", "validUntil"},
		Formats:  map[string]string{"validUntil": "date"},
		Computed: map[string]func(models.SpecialOffer, time.Time) string{
			FieldIsActive: func(o models.SpecialOffer, now time.Time) string {
				return strconv.FormatBool(o.IsActive(now))
			},
		},
		Editable: true,
		Messages: crudMessages("Offer", "Offer added successfully"),
	}
}

func WeeklySpecialSchema() *EntitySchema[models.WeeklySpecial] {
	return &EntitySchema[models.WeeklySpecial]{
		Name:       PageSpecials,
		Title:      "Weekly Specials",
		Noun:       "Special",
		Aliases:    []string{"special", "weekly"},
		Searchable: []string{"title", "dealership", "description"},
		Columns: []Column{
			{Field: "id", Header: "ID"},
			{Field: "title", Header: "Title"},
			{Field: "dealership", Header: "Dealership"},
			{Field: "date", Header: "Date"},
			{Field: "videoUrl", Header: "Video"},
		},
		Required: []string{"title", "dealership", "videoUrl", "date", "description"},
		Formats:  map[string]string{"date": "date"},
		Editable: true,
		Messages: crudMessages("Special", "Special added successfully"),
	}
}
