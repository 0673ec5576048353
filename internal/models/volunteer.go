package models

import "time"

// VolunteerForm is immutable once created.
type VolunteerForm struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	ZipCode     string    `json:"zip_code"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateVolunteerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address" validate:"required"`
	State       string `json:"state" validate:"required"`
	Country     string `json:"country" validate:"required"`
	ZipCode     string `json:"zip_code" validate:"required"`
	Message     string `json:"message" validate:"required"`
}
