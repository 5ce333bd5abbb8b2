package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRole(t *testing.T, role any, allowed ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	reached := false
	next := func(c echo.Context) error { reached = true; return c.NoContent(http.StatusOK) }
	require.NoError(t, RequireRole(allowed...)(next)(c))
	return rec, reached
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec, reached := runRole(t, "admin", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestRequireRoleForbidsOtherRole(t *testing.T) {
	// A valid identity with the wrong role is forbidden, not unauthorized.
	rec, reached := runRole(t, "user", "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestRequireRoleForbidsMissingRole(t *testing.T) {
	rec, reached := runRole(t, nil, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}
