package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the normalized portal role carried in a session token.
type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims are the fields the portal reads from a session token. They are
// re-derived per request and never stored.
type Claims struct {
	Subject  string
	Role     Role
	IssuedAt time.Time
	// ExpiresAt is zero when the token carries no exp claim.
	ExpiresAt time.Time
}

// Expired reports whether the claims expired at the given instant. Tokens
// without an exp claim never expire here; the authorization boundary is the
// backend's, this is only the navigation gate.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}

// Decoder extracts session claims from a raw token. Abstracted so the token
// format can change without touching call sites.
type Decoder interface {
	Decode(token string) (*Claims, error)
}

// JWTDecoder reads claims out of a three-segment base64url JWT without
// verifying the signature. Signature verification happens upstream; the
// portal only needs the claims to route.
type JWTDecoder struct {
	parser *jwt.Parser
}

func NewJWTDecoder() *JWTDecoder {
	return &JWTDecoder{parser: jwt.NewParser()}
}

func (d *JWTDecoder) Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(tokenString, mapClaims); err != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}

	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	claims.Role = rolesFromClaims(mapClaims)

	return claims, nil
}

// rolesFromClaims accepts a `role` string or a `roles` array in any casing.
func rolesFromClaims(mapClaims jwt.MapClaims) Role {
	if raw, ok := mapClaims["role"]; ok {
		if role, ok := NormalizeRole(raw); ok {
			return role
		}
	}
	if raw, ok := mapClaims["roles"]; ok {
		if role, ok := NormalizeRole(raw); ok {
			return role
		}
	}
	return ""
}

// NormalizeRole maps anything role-shaped ("Patient", "patient", "PATIENT",
// ["Doctor","Patient"]) onto a portal role. Patient wins when both appear.
func NormalizeRole(raw any) (Role, bool) {
	switch v := raw.(type) {
	case string:
		lower := strings.ToLower(v)
		if strings.Contains(lower, "patient") {
			return RolePatient, true
		}
		if strings.Contains(lower, "doctor") {
			return RoleDoctor, true
		}
	case []any:
		joined := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				joined = append(joined, strings.ToLower(s))
			}
		}
		all := strings.Join(joined, ",")
		if strings.Contains(all, "patient") {
			return RolePatient, true
		}
		if strings.Contains(all, "doctor") {
			return RoleDoctor, true
		}
	case []string:
		all := strings.ToLower(strings.Join(v, ","))
		if strings.Contains(all, "patient") {
			return RolePatient, true
		}
		if strings.Contains(all, "doctor") {
			return RoleDoctor, true
		}
	}
	return "", false
}
