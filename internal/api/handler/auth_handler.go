package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/consoleiam/admin-console/internal/api/metrics"
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/ports"
	"github.com/consoleiam/admin-console/internal/core/service"
)

// Registrar creates directory accounts. Only the local issuer provides one.
type Registrar interface {
	Register(ctx context.Context, in service.RegisterInput) (*domain.User, error)
}

type AuthHandler struct {
	auth      ports.Authenticator
	registrar Registrar
	store     ports.SessionStore
	expiresAt func(string) (time.Time, bool)
	log       zerolog.Logger
}

func NewAuthHandler(auth ports.Authenticator, registrar Registrar, store ports.SessionStore, expiresAt func(string) (time.Time, bool), log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, registrar: registrar, store: store, expiresAt: expiresAt, log: log}
}

// Login runs the login round trip and feeds the credential to the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	credential, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			return err
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Str("username", req.Username).Msg("login round trip failed")
		return echo.NewHTTPError(http.StatusBadGateway, "login service unavailable")
	}

	if err := h.store.SetToken(ctx, credential); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("username", req.Username).Msg("logged in")
	return c.JSON(http.StatusOK, toSessionResponse(h.store.Snapshot(), h.expiresAt))
}

// Logout clears the session and its stored credential.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Register creates an account in the development user directory.
//
// @Summary      Register a development user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	if h.registrar == nil {
		return echo.NewHTTPError(http.StatusNotFound, "registration is only available with the local issuer")
	}

	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.registrar.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}
