package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kidfest/event-booking/internal/handler"
	"github.com/kidfest/event-booking/internal/middleware"
)

// RegisterAuth wires the authentication endpoints. Register, login,
// refresh and logout live under /v1/auth without a session; /v1/me
// and /v1/logout-all sit behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/logout-all", a.LogoutAll)
}
