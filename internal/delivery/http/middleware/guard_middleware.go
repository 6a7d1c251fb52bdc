package middleware

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"hospital-portal/pkg/token"
)

var assetPathPattern = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)

// GuardMiddleware enforces the role-based navigation rules on page routes:
// unauthenticated or expired sessions go to /login, patients stay under
// /patient, doctors stay under /doctor, and logged-in users hitting / or
// /login bounce to their role home. This is a best-effort gate; the real
// authorization boundary is the backend services.
type GuardMiddleware struct {
	decoder      token.Decoder
	tokenCookies []string
	roleCookie   string
	now          func() time.Time
}

func NewGuardMiddleware(decoder token.Decoder, tokenCookies []string, roleCookie string) *GuardMiddleware {
	return &GuardMiddleware{
		decoder:      decoder,
		tokenCookies: tokenCookies,
		roleCookie:   roleCookie,
		now:          time.Now,
	}
}

func (m *GuardMiddleware) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if isPublicPath(path) {
			if path == "/" || path == "/login" {
				if role, ok := m.sessionRole(r); ok {
					http.Redirect(w, r, roleHome(role), http.StatusFound)
					return
				}
			}
			next.ServeHTTP(w, r)
			return
		}

		role, ok := m.sessionRole(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		switch {
		case role == token.RolePatient && !strings.HasPrefix(path, "/patient"):
			http.Redirect(w, r, "/patient", http.StatusFound)
		case role == token.RoleDoctor && !strings.HasPrefix(path, "/doctor"):
			http.Redirect(w, r, "/doctor", http.StatusFound)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// sessionRole derives the current role from the request. Decoding failures
// are swallowed: garbage cookies read as an absent session.
func (m *GuardMiddleware) sessionRole(r *http.Request) (token.Role, bool) {
	tokenString := PickToken(r, m.tokenCookies)
	if tokenString == "" {
		return "", false
	}

	claims, err := m.decoder.Decode(tokenString)
	if err != nil {
		return "", false
	}
	if claims.Expired(m.now()) {
		return "", false
	}

	if claims.Role != "" {
		return claims.Role, true
	}

	// Fallback: a plain role cookie set alongside the token.
	if cookie, err := r.Cookie(m.roleCookie); err == nil {
		if role, ok := token.NormalizeRole(cookie.Value); ok {
			return role, true
		}
	}

	return "", false
}

func isPublicPath(path string) bool {
	switch path {
	case "/", "/login", "/register":
		return true
	}
	for _, prefix := range []string{"/api", "/favicon", "/assets", "/static"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return assetPathPattern.MatchString(path)
}

func roleHome(role token.Role) string {
	if role == token.RoleDoctor {
		return "/doctor"
	}
	return "/patient"
}
