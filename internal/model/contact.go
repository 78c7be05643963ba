package model

import "time"

// ContactSubmission represents a message submitted via the contact form.
// Records are immutable once stored.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput is a contact form body that has passed validation.
// It carries exactly the five submitted fields and nothing else.
type ContactInput struct {
	Name    string `json:"name"    validate:"min=2"`
	Email   string `json:"email"   validate:"required,email,dotdomain"`
	Phone   string `json:"phone"   validate:"min=5"`
	Subject string `json:"subject" validate:"min=2"`
	Message string `json:"message" validate:"min=10"`
}

// FieldError describes one violated constraint on a submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
