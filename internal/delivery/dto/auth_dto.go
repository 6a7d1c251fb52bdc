package dto

// Request DTOs

type LoginRequest struct {
	HospitalNumber int    `json:"hospital_number" validate:"required,min=1"`
	Password       string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	CitizenID   string `json:"citizen_id" validate:"required,len=13,numeric"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,min=9,max=15"`
	Password    string `json:"password" validate:"required,min=8"`
}

// Response DTOs

type RegisterResponse struct {
	HospitalNumber int `json:"hospital_number"`
}

type UserResponse struct {
	ID          int      `json:"id"`
	CitizenID   string   `json:"citizen_id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	PhoneNumber string   `json:"phone_number"`
	Roles       []string `json:"roles"`
}

type SessionResponse struct {
	Subject string        `json:"subject"`
	Role    string        `json:"role"`
	User    *UserResponse `json:"user,omitempty"`
}
