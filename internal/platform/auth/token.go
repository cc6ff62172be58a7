package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles assigned to users. There is no finer-grained permission model; a
// session either belongs to a patient or to a back-office admin.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrBadToken = errors.New("invalid token")

// Claims is the session credential payload. Profile fields that the UI needs
// on every page (name, diabetes type) are embedded in the token itself, so
// the credential must be reissued whenever one of them changes.
type Claims struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	DiabetesType string `json:"diabetesType,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the session carries the admin role.
func (c *Claims) IsAdmin() bool { return c.Role == RoleAdmin }

func (m *SessionManager) issueToken(id, name, email, role, diabetesType string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:           id,
		Name:         name,
		Email:        email,
		Role:         role,
		DiabetesType: diabetesType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the token signature and expiry and returns its claims.
func (m *SessionManager) Parse(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Block alg confusion: only HMAC tokens are ever issued.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return claims, nil
}
