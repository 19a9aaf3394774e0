package models

import "time"

const DateLayout = "2006-01-02"

type SpecialOffer struct {
	ID          int    `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	Dealership  string `json:"dealership" mapstructure:"dealership"`
	Banner      string `json:"banner" mapstructure:"banner"`
	ValidUntil  string `json:"validUntil" mapstructure:"validUntil"`
	Terms       string `json:"terms" mapstructure:"terms"`
}

func (o SpecialOffer) GetID() int { return o.ID }

// IsActive reports whether the offer is still valid at now. A date-only
// validUntil means midnight of that day in now's location. Unparseable values
// are treated as expired.
func (o SpecialOffer) IsActive(now time.Time) bool {
	until, err := time.ParseInLocation(DateLayout, o.ValidUntil, now.Location())
	if err != nil {
		until, err = time.Parse(time.RFC3339, o.ValidUntil)
		if err != nil {
			return false
		}
	}
	return until.After(now)
}
