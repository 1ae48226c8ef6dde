package middleware

import (
	"net/http"
	"strings"
	"time"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"

	"github.com/labstack/echo/v4"
)

const (
	claimsContextKey = "auth_claims"

	// AuthCookie is the cookie browsers carry the token in on page routes.
	AuthCookie = "auth-token"

	// Setup and dashboard page paths used by the redirect rules.
	setupPath     = "/setup"
	dashboardPath = "/dashboard"
)

// Routes reachable without a token. Prefix match, so /setup/status is
// covered by /setup.
var publicRoutes = []string{
	"/api/auth/setup",
	"/api/auth/setup/status",
	"/api/auth/login",
}

// RequestGate classifies every request as public, API or page and enforces
// the corresponding auth policy. It is a pure function of the request's
// path, headers and cookies; no state survives across requests.
func RequestGate(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			for _, route := range publicRoutes {
				if strings.HasPrefix(path, route) {
					return next(c)
				}
			}

			if strings.HasPrefix(path, "/api/") {
				return gateAPI(c, next, tokens)
			}
			return gatePage(c, next, tokens)
		}
	}
}

// gateAPI requires a bearer token and forwards the verified identity as
// x-user-* headers plus context claims.
func gateAPI(c echo.Context, next echo.HandlerFunc, tokens *auth.TokenService) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "Authentication required",
		})
	}

	token := strings.TrimPrefix(header, "Bearer ")
	claims, err := tokens.Verify(token)
	if err != nil {
		if ae, ok := auth.AsAuthError(err); ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"error":   ae.Message,
				"code":    ae.Code,
			})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "Invalid or expired token",
		})
	}

	req := c.Request()
	req.Header.Set("x-user-id", claims.UserID)
	req.Header.Set("x-user-email", claims.Email)
	req.Header.Set("x-user-role", claims.Role)
	c.Set(claimsContextKey, claims)
	return next(c)
}

// gatePage applies the cookie-based browser rules: unauthenticated traffic
// lands on /setup, authenticated traffic is kept off it, and an unverifiable
// cookie is treated as "not authenticated", never as an error.
func gatePage(c echo.Context, next echo.HandlerFunc, tokens *auth.TokenService) error {
	path := c.Request().URL.Path

	cookie, err := c.Cookie(AuthCookie)
	if err != nil || cookie.Value == "" {
		if path == setupPath {
			return next(c)
		}
		return c.Redirect(http.StatusTemporaryRedirect, setupPath)
	}

	if _, err := tokens.Verify(cookie.Value); err != nil {
		clearAuthCookie(c)
		return c.Redirect(http.StatusTemporaryRedirect, setupPath)
	}

	if path == setupPath {
		return c.Redirect(http.StatusTemporaryRedirect, dashboardPath)
	}
	return next(c)
}

func clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
}

// GetClaims returns the identity the gate attached, or nil on public routes.
func GetClaims(c echo.Context) *auth.Claims {
	v := c.Get(claimsContextKey)
	if v == nil {
		return nil
	}
	if claims, ok := v.(*auth.Claims); ok {
		return claims
	}
	return nil
}

// AdminOnly rejects non-ADMIN identities. Must run after the gate.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := GetClaims(c)
		if claims == nil || claims.Role != model.RoleAdmin {
			return c.JSON(http.StatusForbidden, echo.Map{
				"success": false,
				"error":   "Admin role required",
			})
		}
		return next(c)
	}
}
