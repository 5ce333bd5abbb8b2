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

func runRateLimit(t *testing.T, mw echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error { reached = true; return c.NoContent(http.StatusOK) }
	require.NoError(t, mw(next)(c))
	return rec, reached
}

func rateLimitTestConfig(enabled bool) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        enabled,
		Capacity:       60,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
}

func TestTokenBucketPassThroughWithoutRedis(t *testing.T) {
	// No Redis at startup: the limiter must not block anything.
	mw := NewTokenBucket(rateLimitTestConfig(true), nil)

	rec, reached := runRateLimit(t, mw)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestTokenBucketPassThroughWhenDisabled(t *testing.T) {
	// Disabled config short-circuits before the client is ever used,
	// so an unreachable address is never dialed.
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	mw := NewTokenBucket(rateLimitTestConfig(false), rdb)

	rec, reached := runRateLimit(t, mw)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
