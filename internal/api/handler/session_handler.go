package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/consoleiam/admin-console/internal/api/metrics"
	"github.com/consoleiam/admin-console/internal/core/capability"
	"github.com/consoleiam/admin-console/internal/core/navigation"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// SessionHandler exposes the session store and everything derived from it to
// the view layer.
type SessionHandler struct {
	store     ports.SessionStore
	expiresAt func(string) (time.Time, bool)
	log       zerolog.Logger
}

func NewSessionHandler(store ports.SessionStore, expiresAt func(string) (time.Time, bool), log zerolog.Logger) *SessionHandler {
	return &SessionHandler{store: store, expiresAt: expiresAt, log: log}
}

// Get returns the current session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(snapshot(c, h.store), h.expiresAt))
}

// SetToken replaces the session with the given credential. An empty token
// logs out.
//
// @Summary      Set credential
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Credential"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /session/token [post]
func (h *SessionHandler) SetToken(c echo.Context) error {
	var req tokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.store.SetToken(c.Request().Context(), req.Token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(h.store.Snapshot(), h.expiresAt))
}

// SetProfile replaces the profile after an out-of-band refresh.
//
// @Summary      Replace profile
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /session/profile [put]
func (h *SessionHandler) SetProfile(c echo.Context) error {
	var req profileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.store.SetProfile(toProfile(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(h.store.Snapshot(), h.expiresAt))
}

// SetTenant selects or clears the active tenant.
//
// @Summary      Select tenant
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      tenantRequest  true  "Tenant"
// @Success      200   {object}  sessionResponse
// @Router       /session/tenant [put]
func (h *SessionHandler) SetTenant(c echo.Context) error {
	var req tenantRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	h.store.SetTenant(toTenant(req))
	return c.JSON(http.StatusOK, toSessionResponse(h.store.Snapshot(), h.expiresAt))
}

// Capabilities returns every capability flag of the session.
//
// @Summary      Capability flags
// @Tags         session
// @Produce      json
// @Success      200  {object}  capability.Capabilities
// @Router       /session/capabilities [get]
func (h *SessionHandler) Capabilities(c echo.Context) error {
	return c.JSON(http.StatusOK, capability.Derive(snapshot(c, h.store)))
}

// Navigation returns the menu visibility flags.
//
// @Summary      Navigation flags
// @Tags         session
// @Produce      json
// @Success      200  {object}  navigation.Menu
// @Router       /session/navigation [get]
func (h *SessionHandler) Navigation(c echo.Context) error {
	return c.JSON(http.StatusOK, navigation.Derive(capability.Derive(snapshot(c, h.store))))
}

// Resource returns the standard flags for an ad-hoc resource keyword.
//
// @Summary      Resource flags
// @Tags         session
// @Produce      json
// @Param        resource  path      string  true  "Resource keyword, e.g. tenants"
// @Success      200       {object}  capability.Resource
// @Router       /session/resources/{resource} [get]
func (h *SessionHandler) Resource(c echo.Context) error {
	keyword := c.Param("resource")
	r := capability.ForResource(snapshot(c, h.store), keyword)
	if !r.Known {
		metrics.ObserveUnknownResource()
		h.log.Warn().Str("keyword", keyword).Msg("capability lookup for unknown resource keyword")
	}
	return c.JSON(http.StatusOK, r)
}

// Check evaluates an ad-hoc permission, role or resource requirement.
//
// @Summary      Check a requirement
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      checkRequest  true  "Requirement"
// @Success      200   {object}  checkResponse
// @Failure      400   {object}  errorResponse
// @Router       /session/check [post]
func (h *SessionHandler) Check(c echo.Context) error {
	var req checkRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	requirement := toRequirement(req)

	allowed := requirement.Satisfied(snapshot(c, h.store))
	if req.Resource != "" {
		allowed = allowed && resolver(c, h.store).CanAccessResource(req.Resource, req.Action)
	}
	return c.JSON(http.StatusOK, checkResponse{Allowed: allowed, Unknown: requirement.Unknown()})
}
