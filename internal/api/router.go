package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/consoleiam/admin-console/docs"
	"github.com/consoleiam/admin-console/internal/api/handler"
	"github.com/consoleiam/admin-console/internal/api/middleware"
	"github.com/consoleiam/admin-console/internal/core/codec"
	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/core/guard"
	"github.com/consoleiam/admin-console/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Store ports.SessionStore
	Codec *codec.Codec
	Auth  ports.Authenticator
	// Registrar is nil unless the local issuer is active.
	Registrar handler.Registrar
	// Health maps readiness check names to backends.
	Health map[string]ports.Pinger
	Log    zerolog.Logger
}

// view is a console screen the shell checks before entering it.
type view struct {
	name        string
	requirement guard.Requirement
}

// views mirrors the navigation menu. Each screen gets a gate at /views/<name>
// answering 204 when the request's session may enter it.
var views = []view{
	{"users", guard.Requirement{Permission: domain.Perm(domain.FamilyUsers, domain.ActionRead)}},
	{"tenants", guard.Requirement{Permission: domain.Perm(domain.FamilyTenants, domain.ActionRead)}},
	{"roles", guard.Requirement{Permission: domain.Perm(domain.FamilyRoles, domain.ActionRead)}},
	{"products", guard.Requirement{Permission: domain.Perm(domain.FamilyProducts, domain.ActionRead)}},
	{"modules", guard.Requirement{Permission: domain.Perm(domain.FamilyModules, domain.ActionRead)}},
	{"audit-logs", guard.Requirement{Permission: domain.Perm(domain.FamilyAudit, domain.ActionRead)}},
	{"payments", guard.Requirement{Permission: domain.Perm(domain.FamilyPayments, domain.ActionRead)}},
	{"system-settings", guard.Requirement{Roles: []domain.RoleName{domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleSystemAdmin}}},
}

// viewGuards builds one live guard per screen. They follow the store for
// the life of the process.
func viewGuards(source ports.SessionSource, log zerolog.Logger) map[string]*guard.Guard {
	gates := make(map[string]*guard.Guard, len(views))
	for _, v := range views {
		g := guard.New(source, v.requirement, guard.WithLogger(log))
		name := v.name
		g.OnChange(func(allowed bool) {
			log.Debug().Str("view", name).Bool("allowed", allowed).Msg("view access changed")
		})
		gates[name] = g
	}
	return gates
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(middleware.Session(d.Store))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Registrar, d.Store, d.Codec.ExpiresAt, d.Log.With().Str("component", "auth").Logger())
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/register", authHandler.Register)

	// --- Session routes ---
	sessionHandler := handler.NewSessionHandler(d.Store, d.Codec.ExpiresAt, d.Log.With().Str("component", "session").Logger())
	requireSession := middleware.RequireSession(d.Store, d.Codec)

	s := e.Group("/session")
	s.GET("", sessionHandler.Get)
	s.POST("/token", sessionHandler.SetToken)
	s.PUT("/profile", sessionHandler.SetProfile, requireSession)
	s.PUT("/tenant", sessionHandler.SetTenant)
	s.GET("/capabilities", sessionHandler.Capabilities)
	s.GET("/navigation", sessionHandler.Navigation)
	s.GET("/resources/:resource", sessionHandler.Resource)
	s.POST("/check", sessionHandler.Check)

	// --- View gates ---
	viewLog := d.Log.With().Str("component", "views").Logger()
	e.GET("/views", handler.NewViewHandler(viewGuards(d.Store, viewLog)).List)
	for _, v := range views {
		e.GET("/views/"+v.name, allow, requireSession, middleware.RequirePermission(d.Store, v.requirement, viewLog))
	}

	// --- Health probes, metrics, docs ---
	healthHandler := handler.NewHealthHandler(d.Health)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func allow(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
