package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the HTTP-only cookie carrying the credential.
const SessionCookie = "auth-token"

// SessionManager issues and verifies the stateless session credential. The
// credential is entirely self-contained: nothing is stored server-side, so a
// session cannot be revoked before expiry except by rotating the secret.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessionManager(secret string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// SessionUser is the identity snapshot embedded into a credential.
type SessionUser struct {
	ID           string
	Name         string
	Email        string
	Role         string
	DiabetesType string
}

// Issue signs a fresh credential for the given user.
func (m *SessionManager) Issue(u SessionUser) (string, error) {
	return m.issueToken(u.ID, u.Name, u.Email, u.Role, u.DiabetesType)
}

// SetCookie attaches the credential to the response.
func (m *SessionManager) SetCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func (m *SessionManager) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
