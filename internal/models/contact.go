package models

import "time"

// ContactForm is immutable once created; there is no update path.
type ContactForm struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
