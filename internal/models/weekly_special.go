package models

type WeeklySpecial struct {
	ID          int    `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Dealership  string `json:"dealership" mapstructure:"dealership"`
	VideoURL    string `json:"videoUrl" mapstructure:"videoUrl"`
	Description string `json:"description" mapstructure:"description"`
	Date        string `json:"date" mapstructure:"date"`
}

func (w WeeklySpecial) GetID() int { return w.ID }
