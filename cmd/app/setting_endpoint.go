package main

import (
	"net/http"

	"InvoiceNestAPI/internal/middleware"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type settingRequest struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Type        string  `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// registerSettingRoutes exposes the key/value application settings. All
// writes are admin-only; reads only need a valid token.
func registerSettingRoutes(api *echo.Group, ss *services.SettingService) {
	grp := api.Group("/settings")

	grp.GET("", func(c echo.Context) error {
		list, err := ss.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusOK, list, "")
	})

	grp.GET("/:key", func(c echo.Context) error {
		s, err := ss.Get(c.Request().Context(), c.Param("key"))
		if err != nil {
			return notFoundOr(c, err, "setting not found")
		}
		return respond(c, http.StatusOK, s, "")
	})

	admin := grp.Group("")
	admin.Use(middleware.AdminOnly)

	admin.PUT("", func(c echo.Context) error {
		req := new(settingRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		s := &model.Setting{
			Key:         req.Key,
			Value:       req.Value,
			Type:        req.Type,
			Description: req.Description,
		}
		if claims := middleware.GetClaims(c); claims != nil {
			s.CreatedBy = claims.UserID
		}
		if err := ss.Set(c.Request().Context(), s); err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusOK, s, "Setting saved")
	})

	admin.DELETE("/:key", func(c echo.Context) error {
		if err := ss.Delete(c.Request().Context(), c.Param("key")); err != nil {
			return notFoundOr(c, err, "setting not found")
		}
		return respond(c, http.StatusOK, nil, "Setting deleted")
	})
}
