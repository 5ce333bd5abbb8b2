package router // package router registers the HTTP routes for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/kidfest/event-booking/internal/handler"
)

// RegisterRoutes registers routes that require no authentication.
// Currently only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}
