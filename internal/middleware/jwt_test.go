package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyamorozov/portfolio-cms/internal/utils"
)

const testSecret = "test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuth_ValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 7, "ADMIN", 5)
	require.NoError(t, err)

	rec, c := runJWT(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Claims are surfaced on the context for downstream middleware.
	assert.Equal(t, "ADMIN", c.Get("role"))
	assert.NotNil(t, c.Get("user_id"))
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec, _ := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 7, "ADMIN", 5)
	require.NoError(t, err)

	rec, _ := runJWT(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	rec, _ := runJWT(t, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	handler := RequireRole("ADMIN")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	run := func(role any) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		require.NoError(t, handler(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, run("ADMIN").Code)
	assert.Equal(t, http.StatusForbidden, run("CUSTOMER").Code)
	// Missing or non-string roles are treated as absent.
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
	assert.Equal(t, http.StatusForbidden, run(42).Code)
}
