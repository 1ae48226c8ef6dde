package main

import (
	"net/http"
	"time"

	"InvoiceNestAPI/internal/middleware"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type paymentRequest struct {
	CustomerID string     `json:"customer_id"`
	InvoiceID  *string    `json:"invoice_id,omitempty"`
	Amount     float64    `json:"amount"`
	Method     string     `json:"method"`
	Date       *time.Time `json:"date,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	Status     string     `json:"status,omitempty"`
}

func registerPaymentRoutes(api *echo.Group, ps *services.PaymentService) {
	grp := api.Group("/payments")

	grp.GET("", func(c echo.Context) error {
		p := listParamsFrom(c)
		list, total, err := ps.List(c.Request().Context(), p, c.QueryParam("customer_id"), c.QueryParam("invoice_id"))
		if err != nil {
			return writeError(c, err)
		}
		return respondList(c, list, pageInfo{
			Page: p.Page, Limit: p.Limit, Total: total, TotalPages: p.TotalPages(total),
		})
	})

	grp.GET("/:id", func(c echo.Context) error {
		pay, err := ps.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return notFoundOr(c, err, "payment not found")
		}
		return respond(c, http.StatusOK, pay, "")
	})

	grp.POST("", func(c echo.Context) error {
		req := new(paymentRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		pay := &model.Payment{
			CustomerID: req.CustomerID,
			InvoiceID:  req.InvoiceID,
			Amount:     req.Amount,
			Method:     req.Method,
			Notes:      req.Notes,
			Status:     req.Status,
		}
		if req.Date != nil {
			pay.Date = *req.Date
		}
		if claims := middleware.GetClaims(c); claims != nil {
			pay.CreatedBy = claims.UserID
		}
		if err := ps.Create(c.Request().Context(), pay); err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusCreated, pay, "Payment recorded")
	})

	grp.PUT("/:id", func(c echo.Context) error {
		req := new(paymentRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		pay := &model.Payment{
			ID:     c.Param("id"),
			Amount: req.Amount,
			Method: req.Method,
			Notes:  req.Notes,
			Status: req.Status,
		}
		if req.Date != nil {
			pay.Date = *req.Date
		}
		if err := ps.Update(c.Request().Context(), pay); err != nil {
			return notFoundOr(c, err, "payment not found")
		}
		return respond(c, http.StatusOK, pay, "Payment updated")
	})

	grp.DELETE("/:id", func(c echo.Context) error {
		if err := ps.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return notFoundOr(c, err, "payment not found")
		}
		return respond(c, http.StatusOK, nil, "Payment deleted")
	})
}
