package models

// Storage is the seed snapshot of every dashboard collection.
type Storage struct {
	Businesses []Business          `json:"businesses"`
	BlogPosts  []BlogPost          `json:"blogPosts"`
	Contacts   []ContactSubmission `json:"contactSubmissions"`
	Inventory  []Vehicle           `json:"inventory"`
	Bookings   []ServiceBooking    `json:"serviceBookings"`
	Offers     []SpecialOffer      `json:"offers"`
	Specials   []WeeklySpecial     `json:"weeklySpecials"`
}
