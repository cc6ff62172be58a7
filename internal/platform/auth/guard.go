package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Browser-facing page paths. API routes live under /api and answer 401 JSON
// instead of redirecting.
var userProtectedPrefixes = []string{
	"/dashboard",
	"/readings",
	"/appointments",
	"/profile",
	"/health-companion",
}

const adminPrefix = "/admin"

const (
	loginPath          = "/login"
	userDashboardPath  = "/dashboard"
	adminDashboardPath = "/admin/dashboard"
)

// Renamed pages keep their old URLs working.
var legacyRedirects = map[string]string{
	"/settings": "/profile",
}

// PageGuard enforces the navigation rules for browser page loads:
//
//   - unauthenticated visits to a protected page bounce to the login page,
//     carrying the original path as a callback target
//   - admin pages bounce non-admin sessions back to the user dashboard
//   - an admin hitting the generic user dashboard lands on the admin one
//
// Runs after Session, so an expired credential has already been cleared and
// simply looks unauthenticated here.
func PageGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if target, ok := legacyRedirects[path]; ok {
				return c.Redirect(http.StatusFound, target)
			}

			userProtected := false
			for _, prefix := range userProtectedPrefixes {
				if strings.HasPrefix(path, prefix) {
					userProtected = true
					break
				}
			}
			adminProtected := strings.HasPrefix(path, adminPrefix)

			if !userProtected && !adminProtected {
				return next(c)
			}

			claims, ok := ClaimsFromContext(c.Request().Context())
			if !ok {
				return c.Redirect(http.StatusFound, loginPath+"?callbackUrl="+path)
			}

			if adminProtected && !claims.IsAdmin() {
				return c.Redirect(http.StatusFound, userDashboardPath)
			}

			if path == userDashboardPath && claims.IsAdmin() {
				return c.Redirect(http.StatusFound, adminDashboardPath)
			}

			return next(c)
		}
	}
}
