package models

import "slices"

type Business struct {
	ID       int      `json:"id" mapstructure:"id"`
	Name     string   `json:"name" mapstructure:"name"`
	Type     string   `json:"type" mapstructure:"type"`
	Address  string   `json:"address" mapstructure:"address"`
	Phone    string   `json:"phone" mapstructure:"phone"`
	Email    string   `json:"email" mapstructure:"email"`
	Website  string   `json:"website" mapstructure:"website"`
	Hours    string   `json:"hours" mapstructure:"hours"`
	Services []string `json:"services" mapstructure:"services"`
}

func (b Business) GetID() int { return b.ID }

func (b Business) Clone() Business {
	b.Services = slices.Clone(b.Services)
	return b
}
