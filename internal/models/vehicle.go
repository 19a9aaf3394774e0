package models

import "slices"

type Vehicle struct {
	ID           int      `json:"id" mapstructure:"id"`
	Brand        string   `json:"brand" mapstructure:"brand"`
	Model        string   `json:"model" mapstructure:"model"`
	Year         int      `json:"year" mapstructure:"year"`
	Mileage      int      `json:"mileage" mapstructure:"mileage"`
	Price        int      `json:"price" mapstructure:"price"`
	Dealer       string   `json:"dealer" mapstructure:"dealer"`
	Condition    string   `json:"condition" mapstructure:"condition"`
	Transmission string   `json:"transmission" mapstructure:"transmission"`
	FuelType     string   `json:"fuelType" mapstructure:"fuelType"`
	Images       []string `json:"images" mapstructure:"images"`
}

func (v Vehicle) GetID() int { return v.ID }

func (v Vehicle) Clone() Vehicle {
	v.Images = slices.Clone(v.Images)
	return v
}
