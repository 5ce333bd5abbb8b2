package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidfest/event-booking/internal/config"
)

func runCache(t *testing.T, mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/programs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.JSON(http.StatusOK, echo.Map{"items": []int{}})
	}
	require.NoError(t, mw(next)(c))
	return rec, reached
}

func TestResponseCachePassThroughWithoutRedis(t *testing.T) {
	// No Redis at startup: requests must flow untouched.
	mw := NewResponseCache(config.CacheConfig{Enabled: true, TTL: time.Second, Prefix: "cache"}, nil)

	rec, reached := runCache(t, mw)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestResponseCachePassThroughWhenDisabled(t *testing.T) {
	// Disabled config short-circuits before the client is ever used,
	// so an unreachable address is never dialed.
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	mw := NewResponseCache(config.CacheConfig{Enabled: false, TTL: time.Second, Prefix: "cache"}, rdb)

	rec, reached := runCache(t, mw)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
