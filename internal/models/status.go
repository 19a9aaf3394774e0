package models

import "slices"

type PostStatus string

const (
	PostPublished PostStatus = "Published"
	PostDraft     PostStatus = "Draft"
)

func PostStatuses() []PostStatus { return []PostStatus{PostPublished, PostDraft} }

func (s PostStatus) String() string { return string(s) }
func (s PostStatus) Valid() bool    { return slices.Contains(PostStatuses(), s) }

type ContactStatus string

const (
	ContactNew       ContactStatus = "New"
	ContactResponded ContactStatus = "Responded"
	ContactArchived  ContactStatus = "Archived"
)

func ContactStatuses() []ContactStatus {
	return []ContactStatus{ContactNew, ContactResponded, ContactArchived}
}

func (s ContactStatus) String() string { return string(s) }
func (s ContactStatus) Valid() bool    { return slices.Contains(ContactStatuses(), s) }

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

func BookingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled}
}

func (s BookingStatus) String() string { return string(s) }
func (s BookingStatus) Valid() bool    { return slices.Contains(BookingStatuses(), s) }

// Option lists offered by the edit forms.
var (
	BusinessTypes = []string{
		"Car Wash", "Parts Store", "Repair Shop", "Oil Change", "Tire Shop",
		"Body Shop", "Towing Service", "Insurance", "Financing", "Other",
	}
	VehicleConditions    = []string{"Excellent", "Good", "Fair", "Poor"}
	VehicleTransmissions = []string{"Automatic", "Manual", "CVT"}
	VehicleFuelTypes     = []string{"Gasoline", "Diesel", "Hybrid", "Electric"}
)

// EnumStrings converts a typed enumeration to its string members.
func EnumStrings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
