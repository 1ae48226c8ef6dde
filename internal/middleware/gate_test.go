package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"InvoiceNestAPI/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateApp(tokens *auth.TokenService) *echo.Echo {
	e := echo.New()
	e.Use(RequestGate(tokens))

	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "login")
	})
	e.GET("/api/invoices", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Request().Header.Get("x-user-id"),
			"email":   c.Request().Header.Get("x-user-email"),
			"role":    c.Request().Header.Get("x-user-role"),
		})
	})
	e.GET("/setup", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup")
	})
	e.GET("/dashboard", func(c echo.Context) error {
		return c.String(http.StatusOK, "dashboard")
	})
	return e
}

func TestGatePublicRoutePassesWithoutToken(t *testing.T) {
	e := newGateApp(auth.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateAPIMissingHeader(t *testing.T) {
	e := newGateApp(auth.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestGateAPIInvalidToken(t *testing.T) {
	e := newGateApp(auth.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer invalid.token.here")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), string(auth.CodeInvalidToken))
}

func TestGateAPIExpiredToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	e := newGateApp(tokens)

	expired := auth.NewTokenService("secret", -time.Second)
	token, err := expired.Generate("u1", "u1@example.com", "USER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), string(auth.CodeTokenExpired))
}

func TestGateAPIForwardsIdentity(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	e := newGateApp(tokens)

	token, err := tokens.Generate("user-42", "admin@example.com", "ADMIN")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-42")
	assert.Contains(t, rec.Body.String(), "admin@example.com")
	assert.Contains(t, rec.Body.String(), "ADMIN")
}

func TestGatePageNoCookie(t *testing.T) {
	e := newGateApp(auth.NewTokenService("secret", time.Hour))

	t.Run("setup passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/setup", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anything else redirects to setup", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/setup", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestGatePageValidCookie(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	e := newGateApp(tokens)

	token, err := tokens.Generate("u1", "u1@example.com", "USER")
	require.NoError(t, err)

	t.Run("setup redirects to dashboard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/setup", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("dashboard passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGatePageInvalidCookieClearedAndRedirected(t *testing.T) {
	e := newGateApp(auth.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/setup", rec.Header().Get(echo.HeaderLocation))

	cleared := false
	for _, sc := range rec.Header().Values(echo.HeaderSetCookie) {
		if strings.HasPrefix(sc, AuthCookie+"=") && strings.Contains(sc, "Max-Age=0") {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected the auth cookie to be expired")
}

func TestGetClaimsOutsideGate(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
}
