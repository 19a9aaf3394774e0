package models

type ServiceBooking struct {
	ID            int           `json:"id" mapstructure:"id"`
	CustomerName  string        `json:"customerName" mapstructure:"customerName"`
	Email         string        `json:"email" mapstructure:"email"`
	Phone         string        `json:"phone" mapstructure:"phone"`
	Service       string        `json:"service" mapstructure:"service"`
	Vehicle       string        `json:"vehicle" mapstructure:"vehicle"`
	PreferredDate string        `json:"preferredDate" mapstructure:"preferredDate"`
	Status        BookingStatus `json:"status" mapstructure:"status"`
	Notes         string        `json:"notes" mapstructure:"notes"`
}

func (b ServiceBooking) GetID() int { return b.ID }
