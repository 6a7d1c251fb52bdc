package entity

import "time"

// User mirrors the users service record for the logged-in person.
type User struct {
	ID          int       `json:"id"`
	CitizenID   string    `json:"citizen_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Roles       []string  `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
