package gateway

import (
	"context"
	"net/http"

	"hospital-portal/internal/domain/entity"
)

// LoginCredentials is what both login endpoints accept.
type LoginCredentials struct {
	HospitalNumber int    `json:"hospital_number"`
	Password       string `json:"password"`
}

// SessionInfo is the users service's view of the current session.
type SessionInfo struct {
	Claims struct {
		Sub  string `json:"sub"`
		Role string `json:"role"`
		Exp  int64  `json:"exp"`
		Iat  int64  `json:"iat"`
	} `json:"claims"`
	Me entity.User `json:"me"`
}

// AuthGateway fronts the users service's authentication endpoints. Tokens are
// issued upstream as Set-Cookie headers; login and refresh return those
// cookies so the handler can relay them to the browser unchanged.
type AuthGateway interface {
	LoginPatient(ctx context.Context, credentials *LoginCredentials) ([]*http.Cookie, error)
	LoginDoctor(ctx context.Context, credentials *LoginCredentials) ([]*http.Cookie, error)
	Logout(ctx context.Context, bearer string) error
	RefreshPatient(ctx context.Context, bearer string) ([]*http.Cookie, error)
	RefreshDoctor(ctx context.Context, bearer string) ([]*http.Cookie, error)
	Me(ctx context.Context, bearer string) (*SessionInfo, error)
}
