package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consoleiam/admin-console/internal/api/middleware"
	"github.com/consoleiam/admin-console/internal/core/authz"
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// snapshot returns the session pinned for this request by the Session
// middleware, or the store's current one.
func snapshot(c echo.Context, reader ports.SessionReader) *domain.Session {
	return middleware.SessionFrom(c, reader)
}

// pinned is a SessionReader frozen on one snapshot.
type pinned struct{ s *domain.Session }

func (p pinned) Snapshot() *domain.Session { return p.s }

// resolver answers authorization questions against the request's snapshot.
func resolver(c echo.Context, reader ports.SessionReader) *authz.Resolver {
	return authz.NewResolver(pinned{s: snapshot(c, reader)})
}

// bind decodes and validates the request body into v.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
