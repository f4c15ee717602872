package http

import (
	"prestamos-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewEcho returns an echo instance with the validator and the envelope
// error handler installed; callers add their own middleware.
func NewEcho(log logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(log)
	return e
}

type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Clientes    *ClienteHandler
	Solicitudes *SolicitudHandler
	Prestamos   *PrestamoHandler
	Pagos       *PagoHandler
	Dashboard   *DashboardHandler
}

// Register mounts every route. /health, /api/register and /api/login are
// public; the rest of /api needs a bearer token. idem guards the two
// money-creating POSTs.
func Register(e *echo.Echo, h Handlers, authn middleware.Authenticator, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	api := e.Group("/api")
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	priv := api.Group("", middleware.RequireAuth(authn))
	priv.GET("/me", h.Auth.Me)
	priv.POST("/logout", h.Auth.Logout)
	priv.GET("/dashboard", h.Dashboard.Summary)

	priv.GET("/clientes", h.Clientes.List)
	priv.POST("/clientes", h.Clientes.Create)
	priv.GET("/clientes/:id", h.Clientes.Get)
	priv.PUT("/clientes/:id", h.Clientes.Update)
	priv.PATCH("/clientes/:id", h.Clientes.Update)
	priv.DELETE("/clientes/:id", h.Clientes.Delete)

	priv.GET("/solicitudes", h.Solicitudes.List)
	priv.POST("/solicitudes", h.Solicitudes.Create)
	priv.GET("/solicitudes/:id", h.Solicitudes.Get)
	priv.PUT("/solicitudes/:id", h.Solicitudes.Update)
	priv.PATCH("/solicitudes/:id", h.Solicitudes.Update)
	priv.DELETE("/solicitudes/:id", h.Solicitudes.Delete)

	priv.GET("/prestamos", h.Prestamos.List)
	priv.POST("/prestamos", h.Prestamos.Create, idem)
	priv.GET("/prestamos/:id", h.Prestamos.Get)
	priv.PUT("/prestamos/:id", h.Prestamos.Update)
	priv.PATCH("/prestamos/:id", h.Prestamos.Update)
	priv.DELETE("/prestamos/:id", h.Prestamos.Delete)

	priv.GET("/pagos", h.Pagos.List)
	priv.POST("/pagos", h.Pagos.Create, idem)
	priv.GET("/pagos/:id", h.Pagos.Get)
	priv.DELETE("/pagos/:id", h.Pagos.Delete)
}
