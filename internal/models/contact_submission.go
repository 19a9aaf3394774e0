package models

type ContactSubmission struct {
	ID          int           `json:"id" mapstructure:"id"`
	Name        string        `json:"name" mapstructure:"name"`
	Email       string        `json:"email" mapstructure:"email"`
	Phone       string        `json:"phone" mapstructure:"phone"`
	Subject     string        `json:"subject" mapstructure:"subject"`
	Message     string        `json:"message" mapstructure:"message"`
	SubmittedAt string        `json:"submittedAt" mapstructure:"submittedAt"`
	Status      ContactStatus `json:"status" mapstructure:"status"`
}

func (c ContactSubmission) GetID() int { return c.ID }
