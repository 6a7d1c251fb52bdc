package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-portal/pkg/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatePutsSessionInContext(t *testing.T) {
	auth := NewAuthMiddleware(token.NewJWTDecoder(), testTokenCookies)
	tokenString := signedToken(t, jwt.MapClaims{"sub": "42", "role": "Patient"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patient/orders", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenString})

	recorder := httptest.NewRecorder()
	auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := GetSubjectFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "42", subject)

		role, ok := GetRoleFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, token.RolePatient, role)

		raw, ok := GetTokenFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, tokenString, raw)

		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthenticateAcceptsBearerHeader(t *testing.T) {
	auth := NewAuthMiddleware(token.NewJWTDecoder(), testTokenCookies)
	tokenString := signedToken(t, jwt.MapClaims{"sub": "7", "role": "Doctor"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/slots", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	recorder := httptest.NewRecorder()
	auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthenticateRejectsMissingAndExpired(t *testing.T) {
	auth := NewAuthMiddleware(token.NewJWTDecoder(), testTokenCookies)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	// No token at all.
	recorder := httptest.NewRecorder()
	auth.Authenticate(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Expired token.
	expired := signedToken(t, jwt.MapClaims{"sub": "1", "role": "Patient", "exp": time.Now().Add(-time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: expired})
	recorder = httptest.NewRecorder()
	auth.Authenticate(next).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRole(t *testing.T) {
	auth := NewAuthMiddleware(token.NewJWTDecoder(), testTokenCookies)
	patientToken := signedToken(t, jwt.MapClaims{"sub": "1", "role": "Patient"})

	handler := auth.Authenticate(RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/slots", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: patientToken})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestPickTokenOrder(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer from-header")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "from-cookie"})

	assert.Equal(t, "from-header", PickToken(req, testTokenCookies))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "named-cookie"})
	req.AddCookie(&http.Cookie{Name: "other", Value: "x.y.z"})
	assert.Equal(t, "named-cookie", PickToken(req, testTokenCookies))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "whatever", Value: "x.y.z"})
	assert.Equal(t, "x.y.z", PickToken(req, testTokenCookies))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "whatever", Value: "no-dots"})
	assert.Equal(t, "", PickToken(req, testTokenCookies))
}
