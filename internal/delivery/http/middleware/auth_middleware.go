package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hospital-portal/pkg/response"
	"hospital-portal/pkg/token"
)

type contextKey string

const (
	SubjectKey contextKey = "subject"
	RoleKey    contextKey = "role"
	TokenKey   contextKey = "token"
)

// AuthMiddleware guards the portal's /api routes. It decodes the session
// token, rejects missing or expired sessions, and places subject, role and
// the raw token into the request context so usecases can forward it upstream.
type AuthMiddleware struct {
	decoder      token.Decoder
	tokenCookies []string
}

func NewAuthMiddleware(decoder token.Decoder, tokenCookies []string) *AuthMiddleware {
	return &AuthMiddleware{
		decoder:      decoder,
		tokenCookies: tokenCookies,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := PickToken(r, m.tokenCookies)
		if tokenString == "" {
			response.Unauthorized(w, "Session token is required")
			return
		}

		claims, err := m.decoder.Decode(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid session token")
			return
		}
		if claims.Expired(time.Now()) {
			response.Unauthorized(w, "Session has expired")
			return
		}

		ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, TokenKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated requests whose role is not allowed.
func RequireRole(allowed ...token.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowedRole := range allowed {
				if role == allowedRole {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequirePatient is a convenience middleware for patient-only endpoints.
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(token.RolePatient)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints.
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(token.RoleDoctor)(next)
}

// PickToken finds the session token: Authorization bearer first, then the
// known cookie names, then any cookie shaped like a three-segment JWT.
func PickToken(r *http.Request, tokenCookies []string) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	for _, name := range tokenCookies {
		if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	for _, cookie := range r.Cookies() {
		if strings.Count(cookie.Value, ".") == 2 {
			return cookie.Value
		}
	}

	return ""
}

// GetSubjectFromContext extracts the session subject from context.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}

// GetRoleFromContext extracts the session role from context.
func GetRoleFromContext(ctx context.Context) (token.Role, bool) {
	role, ok := ctx.Value(RoleKey).(token.Role)
	return role, ok
}

// GetTokenFromContext extracts the raw session token from context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenString, ok := ctx.Value(TokenKey).(string)
	return tokenString, ok
}
