package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type contextKey string

const claimsKey contextKey = "session_claims"

// WithClaims returns a context carrying verified session claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext retrieves the verified session claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// Session verifies the session cookie when present and stores the claims on
// the request context. An invalid or expired credential is cleared from the
// client as a side effect and the request proceeds unauthenticated; route
// groups that need identity enforce it with RequireSession or RequireAdmin.
func Session(m *SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims, err := m.Parse(cookie.Value)
			if err != nil {
				m.ClearCookie(c)
				return next(c)
			}

			ctx := WithClaims(c.Request().Context(), claims)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireSession rejects unauthenticated requests with 401.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := ClaimsFromContext(c.Request().Context()); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose session does not carry the admin role.
// Non-admins receive 401, the same answer an unauthenticated caller gets.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c.Request().Context())
			if !ok || !claims.IsAdmin() {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}
