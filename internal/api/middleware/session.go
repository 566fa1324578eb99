package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// SessionKey is the echo context key holding the request's session snapshot.
const SessionKey = "session"

// ExpiryChecker reports whether a credential has expired.
type ExpiryChecker interface {
	IsExpired(credential string) bool
}

// Session pins one snapshot per request so every check in a handler sees the
// same state.
func Session(reader ports.SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(SessionKey, reader.Snapshot())
			return next(c)
		}
	}
}

// RequireSession rejects requests without an authenticated session with 401.
// A credential that expired after it was accepted is rejected too; the store
// itself is left alone until the next login or logout.
func RequireSession(reader ports.SessionReader, expiry ExpiryChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c, reader)
			if !s.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if expiry != nil && expiry.IsExpired(s.Credential()) {
				return echo.NewHTTPError(http.StatusUnauthorized, "credential expired")
			}
			c.Set(SessionKey, s)
			return next(c)
		}
	}
}

// SessionFrom returns the snapshot pinned on c, falling back to reader.
func SessionFrom(c echo.Context, reader ports.SessionReader) *domain.Session {
	if s, ok := c.Get(SessionKey).(*domain.Session); ok && s != nil {
		return s
	}
	if reader == nil {
		return nil
	}
	return reader.Snapshot()
}
