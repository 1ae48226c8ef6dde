package main

import (
	"net/http"

	"InvoiceNestAPI/internal/middleware"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type taxTypeRequest struct {
	Name       string  `json:"name"`
	Rate       float64 `json:"rate"`
	IsCompound bool    `json:"is_compound"`
}

func registerTaxTypeRoutes(api *echo.Group, ts *services.TaxTypeService) {
	grp := api.Group("/tax-types")

	grp.GET("", func(c echo.Context) error {
		list, err := ts.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusOK, list, "")
	})

	grp.GET("/:id", func(c echo.Context) error {
		t, err := ts.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return notFoundOr(c, err, "tax type not found")
		}
		return respond(c, http.StatusOK, t, "")
	})

	// writes are admin-only
	admin := grp.Group("")
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(taxTypeRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		t := &model.TaxType{Name: req.Name, Rate: req.Rate, IsCompound: req.IsCompound}
		if claims := middleware.GetClaims(c); claims != nil {
			t.CreatedBy = claims.UserID
		}
		if err := ts.Create(c.Request().Context(), t); err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusCreated, t, "Tax type created")
	})

	admin.PUT("/:id", func(c echo.Context) error {
		req := new(taxTypeRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		t := &model.TaxType{ID: c.Param("id"), Name: req.Name, Rate: req.Rate, IsCompound: req.IsCompound}
		if err := ts.Update(c.Request().Context(), t); err != nil {
			return notFoundOr(c, err, "tax type not found")
		}
		return respond(c, http.StatusOK, t, "Tax type updated")
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		if err := ts.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return notFoundOr(c, err, "tax type not found")
		}
		return respond(c, http.StatusOK, nil, "Tax type deleted")
	})
}
