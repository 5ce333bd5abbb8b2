package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kidfest/event-booking/internal/middleware"
)

// CatalogHandler exposes the three catalog kinds. Reads are open to
// any authenticated user; mutations are admin-gated by the router.
// After a mutation the cached list responses are invalidated.
type CatalogHandler struct {
	Programs      ProgramStore
	Addons        AddonStore
	Masterclasses MasterclassStore
	Redis         *redis.Client // may be nil; invalidation becomes a no-op
	CachePrefix   string
}

func NewCatalogHandler(programs ProgramStore, addons AddonStore, masterclasses MasterclassStore, rdb *redis.Client, cachePrefix string) *CatalogHandler {
	return &CatalogHandler{
		Programs:      programs,
		Addons:        addons,
		Masterclasses: masterclasses,
		Redis:         rdb,
		CachePrefix:   cachePrefix,
	}
}

type createItemReq struct {
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	PricePerChild int64  `json:"price_per_child"`
}

func (h *CatalogHandler) bindItem(c echo.Context) (createItemReq, bool) {
	var req createItemReq
	if err := c.Bind(&req); err != nil {
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	return req, req.Name != ""
}

func (h *CatalogHandler) invalidate(ctx context.Context) {
	middleware.InvalidateByPrefix(ctx, h.Redis, h.CachePrefix)
}

// ----- programs -----

func (h *CatalogHandler) ListPrograms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Programs.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *CatalogHandler) CreateProgram(c echo.Context) error {
	req, ok := h.bindItem(c)
	if !ok || req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and non-negative price required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	id, err := h.Programs.Create(ctx, req.Name, req.Price)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusCreated, echo.Map{"program_id": id})
}

// DeleteProgram removes a program. Existing bookings referencing it
// keep their captured totals; the stale reference is tolerated.
func (h *CatalogHandler) DeleteProgram(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Programs.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, echo.Map{"message": "program deleted"})
}

// ----- addons -----

func (h *CatalogHandler) ListAddons(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Addons.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *CatalogHandler) CreateAddon(c echo.Context) error {
	req, ok := h.bindItem(c)
	if !ok || req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and non-negative price required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	id, err := h.Addons.Create(ctx, req.Name, req.Price)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusCreated, echo.Map{"addon_id": id})
}

func (h *CatalogHandler) DeleteAddon(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Addons.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, echo.Map{"message": "addon deleted"})
}

// ----- masterclasses -----

func (h *CatalogHandler) ListMasterclasses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Masterclasses.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *CatalogHandler) CreateMasterclass(c echo.Context) error {
	req, ok := h.bindItem(c)
	if !ok || req.PricePerChild < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and non-negative price_per_child required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	id, err := h.Masterclasses.Create(ctx, req.Name, req.PricePerChild)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusCreated, echo.Map{"masterclass_id": id})
}

func (h *CatalogHandler) DeleteMasterclass(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Masterclasses.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, echo.Map{"message": "masterclass deleted"})
}
