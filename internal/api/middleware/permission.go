package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/consoleiam/admin-console/internal/api/metrics"
	"github.com/consoleiam/admin-console/internal/core/guard"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// RequirePermission answers 403 unless the session satisfies req. This gates
// the local API for the view layer only; the identity backend still checks
// every action it receives.
func RequirePermission(reader ports.SessionReader, req guard.Requirement, log zerolog.Logger) echo.MiddlewareFunc {
	if unknown := req.Unknown(); len(unknown) > 0 {
		log.Warn().Interface("permissions", unknown).Msg("route requires unknown permission")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c, reader)
			if req.Empty() {
				return next(c)
			}
			if !s.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !req.Satisfied(s) {
				metrics.GuardDenialsTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
