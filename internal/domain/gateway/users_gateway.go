package gateway

import (
	"context"

	"hospital-portal/internal/domain/entity"
)

// Registration is the user-creation payload for the users service.
type Registration struct {
	CitizenID   string `json:"citizen_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// RegistrationResult carries the hospital number assigned on registration.
type RegistrationResult struct {
	HospitalNumber int `json:"hospital_number"`
}

type UsersGateway interface {
	Register(ctx context.Context, registration *Registration) (*RegistrationResult, error)
	GetUser(ctx context.Context, bearer string, userID int) (*entity.User, error)
}
