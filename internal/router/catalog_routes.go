package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kidfest/event-booking/internal/config"
	"github.com/kidfest/event-booking/internal/handler"
	"github.com/kidfest/event-booking/internal/middleware"
	"github.com/kidfest/event-booking/internal/model"
)

// RegisterCatalog wires the catalog endpoints. Reads are available to
// any authenticated user and pass through the Redis response cache;
// mutations require the admin role.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	cached := g.Group("")
	cached.Use(middleware.NewResponseCache(cacheCfg, rdb))
	cached.GET("/programs", h.ListPrograms)
	cached.GET("/addons", h.ListAddons)
	cached.GET("/masterclasses", h.ListMasterclasses)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/programs", h.CreateProgram)
	admin.DELETE("/programs/:id", h.DeleteProgram)
	admin.POST("/addons", h.CreateAddon)
	admin.DELETE("/addons/:id", h.DeleteAddon)
	admin.POST("/masterclasses", h.CreateMasterclass)
	admin.DELETE("/masterclasses/:id", h.DeleteMasterclass)
}
