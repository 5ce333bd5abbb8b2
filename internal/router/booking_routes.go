package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kidfest/event-booking/internal/handler"
	"github.com/kidfest/event-booking/internal/middleware"
	"github.com/kidfest/event-booking/internal/model"
)

// RegisterBooking wires the booking endpoints. Creation only needs a
// valid identity; list, delete and complete are admin management
// operations.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1/bookings")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.POST("", b.Create)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("", b.List)
	admin.DELETE("/:id", b.Delete)
	admin.PUT("/:id/complete", b.Complete)
}
